package report

import (
	"io"
	"strconv"

	"github.com/npillmayer/crimeset"
	"github.com/npillmayer/crimeset/crime"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var htmlColumns = []string{"ID", "Case Number", "Date", "IUCR", "Primary Type", "Description", "Arrest"}

// WriteHTML renders a crime set as an HTML table, one row per crime in
// ascending ID order. Rows of crimes which led to an arrest carry the class
// "arrest", domestic ones the class "domestic".
func WriteHTML(s *crimeset.Set, w io.Writer) error {
	if s == nil || w == nil {
		return crimeset.ErrIllegalArguments
	}
	table := element(atom.Table, "class", "crimes")
	head := element(atom.Thead)
	tr := element(atom.Tr)
	for _, col := range htmlColumns {
		tr.AppendChild(cell(atom.Th, col))
	}
	head.AppendChild(tr)
	table.AppendChild(head)
	body := element(atom.Tbody)
	s.Each(func(c crime.Crime) bool {
		body.AppendChild(htmlRow(c))
		return true
	})
	table.AppendChild(body)
	T().Debugf("rendering HTML table with %d rows", s.Len())
	if err := html.Render(w, table); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func htmlRow(c crime.Crime) *html.Node {
	var tr *html.Node
	switch {
	case c.Arrest:
		tr = element(atom.Tr, "class", "arrest")
	case c.Domestic:
		tr = element(atom.Tr, "class", "domestic")
	default:
		tr = element(atom.Tr)
	}
	date := ""
	if !c.Date.IsZero() {
		date = c.Date.Format(crime.DateLayout)
	}
	for _, v := range []string{
		strconv.FormatInt(c.ID, 10),
		c.CaseNumber,
		date,
		c.IUCR,
		c.PrimaryType,
		c.Description,
		strconv.FormatBool(c.Arrest),
	} {
		tr.AppendChild(cell(atom.Td, v))
	}
	return tr
}

// element creates an element node with optional attributes, given as
// key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func cell(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
