package crimeset

import "fmt"

// Check validates the ordering invariants of s:
// every ID is positive, and IDs are strictly ascending.
//
// It is meant for tests and for clients which modified crimes through
// iterators and want to make sure no ID has been changed.
func (s *Set) Check() error {
	if s == nil {
		return nil
	}
	for i, c := range s.elements {
		if c.ID <= 0 {
			return fmt.Errorf("%w: non-positive id %d at index %d", ErrInvariant, c.ID, i)
		}
		if i > 0 && s.elements[i-1].ID >= c.ID {
			return fmt.Errorf("%w: id %d at index %d does not exceed predecessor %d",
				ErrInvariant, c.ID, i, s.elements[i-1].ID)
		}
	}
	return nil
}
