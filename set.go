package crimeset

import (
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/crimeset/crime"
)

// Set is an ordered set of crimes, keyed by crime ID.
//
// The zero value is an empty set ready to use.
type Set struct {
	elements []crime.Crime // sorted by ID, strictly ascending, all IDs > 0
}

// New creates an empty set.
func New() *Set {
	return &Set{}
}

// FromRange creates a set holding copies of the elements in the half-open
// range [first, last). Both iterators have to belong to the same set, with
// first not positioned after last.
func FromRange(first, last Iterator) *Set {
	s := &Set{}
	if first.set == nil || first.set != last.set || first.pos >= last.pos {
		return s
	}
	s.elements = slices.Clone(first.set.elements[first.pos:last.pos])
	return s
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	if s == nil {
		return New()
	}
	return &Set{elements: slices.Clone(s.elements)}
}

// Assign replaces the content of s with a copy of other's content.
// Assigning a set to itself leaves it unchanged.
func (s *Set) Assign(other *Set) {
	if s == other {
		return
	}
	if other == nil || len(other.elements) == 0 {
		s.elements = nil
		return
	}
	s.elements = slices.Clone(other.elements)
}

// Len returns the number of crimes in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elements)
}

// IsEmpty reports whether the set holds no crimes.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Element returns the crime at position index, counting from 0 in ascending
// ID order. If index is out of range, the zero crime is returned.
func (s *Set) Element(index int) crime.Crime {
	if index < 0 || index >= s.Len() {
		return crime.Crime{}
	}
	return s.elements[index]
}

// --- Insertion and deletion ------------------------------------------------

// Insert adds a copy of c to the set, if no crime with c's ID is already
// contained. It returns false, leaving the set unchanged, for duplicate IDs and
// for crimes with a non-positive ID.
func (s *Set) Insert(c crime.Crime) bool {
	if c.ID <= 0 {
		T().Debugf("crimeset: rejecting crime with invalid ID %d", c.ID)
		return false
	}
	i := s.lowerBound(c.ID)
	if i < len(s.elements) && s.elements[i].ID == c.ID {
		return false
	}
	s.elements = slices.Insert(s.elements, i, c)
	return true
}

// Erase removes the crime with the given ID. It returns false if no such crime
// is contained.
func (s *Set) Erase(id int64) bool {
	i, found := s.search(id)
	if !found {
		return false
	}
	s.elements = slices.Delete(s.elements, i, i+1)
	return true
}

// EraseEntry removes the crime having c's ID. All other fields of c are ignored.
func (s *Set) EraseEntry(c crime.Crime) bool {
	return s.Erase(c.ID)
}

// --- Lookup ----------------------------------------------------------------

// Find returns an iterator to the crime with c's ID, or End() if there is none.
func (s *Set) Find(c crime.Crime) Iterator {
	return s.FindID(c.ID)
}

// FindID returns an iterator to the crime with the given ID, or End() if there
// is none.
func (s *Set) FindID(id int64) Iterator {
	i, found := s.search(id)
	if !found {
		return s.End()
	}
	return Iterator{set: s, pos: i}
}

// CFind is the read-only variant of Find.
func (s *Set) CFind(c crime.Crime) ConstIterator {
	return s.Find(c).Const()
}

// CFindID is the read-only variant of FindID.
func (s *Set) CFindID(id int64) ConstIterator {
	return s.FindID(id).Const()
}

// LowerBound returns an iterator to the first crime whose ID is not less than
// x's ID, or End() if there is none.
func (s *Set) LowerBound(x crime.Crime) Iterator {
	return Iterator{set: s, pos: s.lowerBound(x.ID)}
}

// UpperBound returns an iterator to the first crime whose ID is greater than
// x's ID, or End() if there is none.
func (s *Set) UpperBound(x crime.Crime) Iterator {
	return Iterator{set: s, pos: s.upperBound(x.ID)}
}

// CLowerBound is the read-only variant of LowerBound.
func (s *Set) CLowerBound(x crime.Crime) ConstIterator {
	return s.LowerBound(x).Const()
}

// CUpperBound is the read-only variant of UpperBound.
func (s *Set) CUpperBound(x crime.Crime) ConstIterator {
	return s.UpperBound(x).Const()
}

// FindByCode returns a new set with copies of all crimes having the given
// IUCR code. The receiver is not modified.
func (s *Set) FindByCode(code string) *Set {
	return s.filter(func(c *crime.Crime) bool {
		return c.IUCR == code
	})
}

// FindByDescription returns a new set with copies of all crimes whose
// description contains text. The receiver is not modified.
func (s *Set) FindByDescription(text string) *Set {
	return s.filter(func(c *crime.Crime) bool {
		return strings.Contains(c.Description, text)
	})
}

// filter scans all elements. Order is preserved, so the result needs no sorting.
func (s *Set) filter(pred func(*crime.Crime) bool) *Set {
	result := New()
	if s == nil {
		return result
	}
	for i := range s.elements {
		if pred(&s.elements[i]) {
			result.elements = append(result.elements, s.elements[i])
		}
	}
	T().Debugf("crimeset: filter selected %d of %d crimes", len(result.elements), len(s.elements))
	return result
}

// --- Iteration -------------------------------------------------------------

// Begin returns an iterator to the crime with the smallest ID.
func (s *Set) Begin() Iterator {
	return Iterator{set: s, pos: 0}
}

// End returns an iterator one past the crime with the largest ID.
func (s *Set) End() Iterator {
	return Iterator{set: s, pos: s.Len()}
}

// CBegin is the read-only variant of Begin.
func (s *Set) CBegin() ConstIterator {
	return s.Begin().Const()
}

// CEnd is the read-only variant of End.
func (s *Set) CEnd() ConstIterator {
	return s.End().Const()
}

// Each calls fn for every crime in ascending ID order.
//
// Iteration stops early if fn returns false.
func (s *Set) Each(fn func(c crime.Crime) bool) {
	if s == nil || fn == nil {
		return
	}
	for _, c := range s.elements {
		if !fn(c) {
			return
		}
	}
}

// All returns an iterator over copies of all crimes in ascending ID order.
func (s *Set) All() iter.Seq[crime.Crime] {
	return func(yield func(crime.Crime) bool) {
		s.Each(yield)
	}
}

// --- Binary search ---------------------------------------------------------

// search locates id, returning its position if found or the insertion point
// otherwise.
func (s *Set) search(id int64) (int, bool) {
	if s == nil {
		return 0, false
	}
	i := s.lowerBound(id)
	return i, i < len(s.elements) && s.elements[i].ID == id
}

func (s *Set) lowerBound(id int64) int {
	lo, hi := 0, s.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.elements[mid].ID < id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (s *Set) upperBound(id int64) int {
	lo, hi := 0, s.Len()
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.elements[mid].ID <= id {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
