/*
Package report renders crime sets for humans.

Console output is a fixed-width table, sized to the terminal if there is one.
Column widths are measured in display positions (“en”s) rather than bytes or
runes, so descriptions containing wide characters still line up. Crimes which
led to an arrest, or which are flagged as domestic, are highlighted with
colors.

HTML output is a plain table, suited for embedding into a page.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package report

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var setupGraphemes sync.Once

// setup prepares the grapheme classes needed for measuring display widths.
func setup() {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
}
