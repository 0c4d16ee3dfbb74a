package crimeset

import "github.com/npillmayer/crimeset/crime"

// Iterator is a bidirectional cursor over the crimes of a set, allowing
// in-place modification of the crime it points to. Iterators are values;
// copying an iterator before calling Next or Prev keeps the old position.
//
// Clients must not change the ID of a crime through an iterator, as this would
// break the ordering of the set.
type Iterator struct {
	set *Set
	pos int
}

// Entry returns a pointer to the crime at the iterator's position.
// The iterator must not be at End().
func (it Iterator) Entry() *crime.Crime {
	return &it.set.elements[it.pos]
}

// Next advances the iterator by one position and returns it.
func (it *Iterator) Next() Iterator {
	it.pos++
	return *it
}

// Prev moves the iterator back by one position and returns it.
func (it *Iterator) Prev() Iterator {
	it.pos--
	return *it
}

// Equal reports whether two iterators point to the same position of the same set.
func (it Iterator) Equal(other Iterator) bool {
	return it.set == other.set && it.pos == other.pos
}

// Const converts it to a read-only iterator at the same position.
func (it Iterator) Const() ConstIterator {
	return ConstIterator{set: it.set, pos: it.pos}
}

// ConstIterator is a read-only bidirectional cursor over the crimes of a set.
type ConstIterator struct {
	set *Set
	pos int
}

// Entry returns a copy of the crime at the iterator's position.
// The iterator must not be at CEnd().
func (it ConstIterator) Entry() crime.Crime {
	return it.set.elements[it.pos]
}

// Next advances the iterator by one position and returns it.
func (it *ConstIterator) Next() ConstIterator {
	it.pos++
	return *it
}

// Prev moves the iterator back by one position and returns it.
func (it *ConstIterator) Prev() ConstIterator {
	it.pos--
	return *it
}

// Equal reports whether two iterators point to the same position of the same set.
func (it ConstIterator) Equal(other ConstIterator) bool {
	return it.set == other.set && it.pos == other.pos
}
