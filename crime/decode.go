package crime

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMissingColumn signals a header without one of the mandatory columns.
	ErrMissingColumn = errors.New("crime: missing mandatory column")
	// ErrMalformedRecord signals a data row which cannot be turned into a Crime.
	ErrMalformedRecord = errors.New("crime: malformed record")
)

// column names as they appear in the header row of the data set
const (
	colID           = "ID"
	colCaseNumber   = "Case Number"
	colDate         = "Date"
	colBlock        = "Block"
	colIUCR         = "IUCR"
	colPrimaryType  = "Primary Type"
	colDescription  = "Description"
	colLocationDesc = "Location Description"
	colArrest       = "Arrest"
	colDomestic     = "Domestic"
	colLatitude     = "Latitude"
	colLongitude    = "Longitude"
)

var mandatoryColumns = []string{colID, colIUCR, colDescription}

// Decoder reads crimes from a CSV export. Columns are located by the names in
// the header row, so column order and additional columns do not matter.
type Decoder struct {
	r       *csv.Reader
	columns map[string]int
	line    int
}

// NewDecoder creates a decoder reading from r. The header is read lazily with
// the first call to Decode.
func NewDecoder(r io.Reader) *Decoder {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &Decoder{r: cr}
}

// Line returns the number of the last row read, counting the header as line 1.
func (d *Decoder) Line() int {
	return d.line
}

// Decode returns the next crime. At the end of input it returns io.EOF.
// A row which cannot be decoded yields an error wrapping ErrMalformedRecord;
// clients may skip it and continue decoding.
func (d *Decoder) Decode() (Crime, error) {
	if d.columns == nil {
		if err := d.readHeader(); err != nil {
			return Crime{}, err
		}
	}
	record, err := d.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Crime{}, io.EOF
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			d.line++
			return Crime{}, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, d.line, err)
		}
		return Crime{}, err
	}
	d.line++
	return d.fromRecord(record)
}

func (d *Decoder) readHeader() error {
	header, err := d.r.Read()
	if err != nil {
		return err
	}
	d.line = 1
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range mandatoryColumns {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	d.columns = columns
	T().Debugf("crime decoder: header has %d columns", len(header))
	return nil
}

func (d *Decoder) field(record []string, name string) string {
	i, ok := d.columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (d *Decoder) fromRecord(record []string) (Crime, error) {
	malformed := func(name string, err error) error {
		return fmt.Errorf("%w: line %d, column %q: %v", ErrMalformedRecord, d.line, name, err)
	}
	var c Crime
	id, err := strconv.ParseInt(d.field(record, colID), 10, 64)
	if err != nil {
		return Crime{}, malformed(colID, err)
	}
	if id <= 0 {
		return Crime{}, malformed(colID, fmt.Errorf("id %d is not positive", id))
	}
	c.ID = id
	c.CaseNumber = d.field(record, colCaseNumber)
	if s := d.field(record, colDate); s != "" {
		if c.Date, err = time.Parse(DateLayout, s); err != nil {
			return Crime{}, malformed(colDate, err)
		}
	}
	c.Block = d.field(record, colBlock)
	c.IUCR = d.field(record, colIUCR)
	c.PrimaryType = d.field(record, colPrimaryType)
	c.Description = d.field(record, colDescription)
	c.LocationDescription = d.field(record, colLocationDesc)
	if c.Arrest, err = parseFlag(d.field(record, colArrest)); err != nil {
		return Crime{}, malformed(colArrest, err)
	}
	if c.Domestic, err = parseFlag(d.field(record, colDomestic)); err != nil {
		return Crime{}, malformed(colDomestic, err)
	}
	if c.Latitude, err = parseCoord(d.field(record, colLatitude)); err != nil {
		return Crime{}, malformed(colLatitude, err)
	}
	if c.Longitude, err = parseCoord(d.field(record, colLongitude)); err != nil {
		return Crime{}, malformed(colLongitude, err)
	}
	return c, nil
}

func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(strings.ToLower(s))
}

func parseCoord(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
