package crimeset

import (
	"strings"

	"github.com/npillmayer/crimeset/crime"
)

// DescriptionIterator is a forward cursor visiting only crimes whose
// description contains a given text. It is subject to the same invalidation
// rules as Iterator.
type DescriptionIterator struct {
	set  *Set
	pos  int
	text string
}

// DescriptionBegin returns a cursor to the first crime whose description
// contains text, or DescriptionEnd() if there is none.
func (s *Set) DescriptionBegin(text string) DescriptionIterator {
	it := DescriptionIterator{set: s, text: text}
	it.skip()
	return it
}

// DescriptionEnd returns the end position for description cursors.
func (s *Set) DescriptionEnd() DescriptionIterator {
	return DescriptionIterator{set: s, pos: s.Len()}
}

// Entry returns a pointer to the crime at the cursor's position.
func (it DescriptionIterator) Entry() *crime.Crime {
	return &it.set.elements[it.pos]
}

// Next advances the cursor to the next matching crime.
func (it *DescriptionIterator) Next() DescriptionIterator {
	it.pos++
	it.skip()
	return *it
}

// Equal compares positions only; the search text is not considered.
func (it DescriptionIterator) Equal(other DescriptionIterator) bool {
	return it.set == other.set && it.pos == other.pos
}

func (it *DescriptionIterator) skip() {
	n := it.set.Len()
	for it.pos < n && !strings.Contains(it.set.elements[it.pos].Description, it.text) {
		it.pos++
	}
}

// ArrestIterator is a forward cursor visiting only crimes which led to an
// arrest. It is subject to the same invalidation rules as Iterator.
type ArrestIterator struct {
	set *Set
	pos int
}

// ArrestBegin returns a cursor to the first crime with an arrest, or
// ArrestEnd() if there is none.
func (s *Set) ArrestBegin() ArrestIterator {
	it := ArrestIterator{set: s}
	it.skip()
	return it
}

// ArrestEnd returns the end position for arrest cursors.
func (s *Set) ArrestEnd() ArrestIterator {
	return ArrestIterator{set: s, pos: s.Len()}
}

// Entry returns a pointer to the crime at the cursor's position.
func (it ArrestIterator) Entry() *crime.Crime {
	return &it.set.elements[it.pos]
}

// Next advances the cursor to the next crime with an arrest.
func (it *ArrestIterator) Next() ArrestIterator {
	it.pos++
	it.skip()
	return *it
}

// Equal reports whether two cursors point to the same position.
func (it ArrestIterator) Equal(other ArrestIterator) bool {
	return it.set == other.set && it.pos == other.pos
}

func (it *ArrestIterator) skip() {
	n := it.set.Len()
	for it.pos < n && !it.set.elements[it.pos].Arrest {
		it.pos++
	}
}
