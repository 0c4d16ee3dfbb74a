/*
Package crimeset offers an ordered set of crime records.

A Set stores crime.Crime values by value, in a contiguous sequence kept in
strictly ascending order of the crimes' IDs. Lookups by ID and bound queries use
binary search over that sequence; insertion and deletion shift elements and are
therefore linear. Searches by IUCR code or by description text are full scans
by nature, as these attributes are unrelated to the ordering.

Every Set owns its elements outright. Copies (Clone, Assign, FromRange) are
deep copies, and mutating one set never changes another.

# Iterators

Iterator and ConstIterator are bidirectional cursors over a set, obtained from
Begin/End, CBegin/CEnd, the Find family and the bound queries. End positions
are one past the last element and must never be dereferenced. Any Insert or
Erase on the owning set invalidates all of its iterators; using an iterator
afterwards is a programming error and is not detected.

	it := set.LowerBound(crime.Crime{ID: 1000})
	for ; !it.Equal(set.End()); it.Next() {
	    fmt.Println(it.Entry())
	}

Sets are not safe for concurrent use. Clients sharing a set between goroutines
have to provide their own locking.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package crimeset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SetError is an error type for the crimeset module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrInvariant is flagged by Check whenever the ordering invariants of a set
// do not hold.
const ErrInvariant = SetError("set invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")
