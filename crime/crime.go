/*
Package crime holds the record type stored in a crimeset.Set.

A Crime mirrors one row of the public Chicago crime data set. Records are
ordered and compared by their ID only; all other fields are payload.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package crime

import (
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// DateLayout is the timestamp format used by the data set.
const DateLayout = "01/02/2006 03:04:05 PM"

// Crime is a single crime record. The zero value, having ID 0, is never a valid
// record and serves as a sentinel.
type Crime struct {
	ID                  int64
	CaseNumber          string
	Date                time.Time
	Block               string
	IUCR                string // Illinois Uniform Crime Reporting code
	PrimaryType         string
	Description         string
	LocationDescription string
	Arrest              bool
	Domestic            bool
	Latitude            float64
	Longitude           float64
}

// Less orders crimes by ID.
func (c Crime) Less(other Crime) bool {
	return c.ID < other.ID
}

// Equal reports whether two crimes share the same ID.
func (c Crime) Equal(other Crime) bool {
	return c.ID == other.ID
}

// IsZero reports whether c is the sentinel value.
func (c Crime) IsZero() bool {
	return c.ID == 0
}

// String renders c as a single line:
//
//	ID,CaseNumber,Date,IUCR,PrimaryType,Description,Arrest
func (c Crime) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(c.ID, 10))
	sb.WriteByte(',')
	sb.WriteString(c.CaseNumber)
	sb.WriteByte(',')
	if !c.Date.IsZero() {
		sb.WriteString(c.Date.Format(DateLayout))
	}
	sb.WriteByte(',')
	sb.WriteString(c.IUCR)
	sb.WriteByte(',')
	sb.WriteString(c.PrimaryType)
	sb.WriteByte(',')
	sb.WriteString(c.Description)
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatBool(c.Arrest))
	return sb.String()
}
