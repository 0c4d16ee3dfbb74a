package crimeset

import (
	"io"
	"strings"

	"github.com/npillmayer/crimeset/crime"
)

// String renders all crimes of s, one per line, in ascending ID order.
func (s *Set) String() string {
	var sb strings.Builder
	s.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes all crimes of s to w, one per line, in ascending ID order.
// It implements io.WriterTo.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var err error
	s.Each(func(c crime.Crime) bool {
		var n int
		n, err = io.WriteString(w, c.String()+"\n")
		total += int64(n)
		return err == nil
	})
	return total, err
}
