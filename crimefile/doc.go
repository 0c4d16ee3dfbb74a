/*
Package crimefile provides API helpers to load CSV exports of crime data as sets.

Loading is synchronous. Clients interested in the progress of loading large
files may subscribe to a Loader and will receive Progress messages while the
file is read. Progress messages are broadcast without blocking the loader, so
slow subscribers may miss some of them.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package crimefile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
