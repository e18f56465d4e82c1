package collection

import (
	"github.com/aretw0/typedcoll/pkg/types"
)

// Mutable is a typed sequence that changes in place.
// It is owned by its holder and must not be mutated from several goroutines
// without external synchronization.
type Mutable struct {
	*sequence
}

var _ Collection = (*Mutable)(nil)

// NewMutable creates a mutable sequence of the declared type holding items in order.
// It fails without producing a container if any item does not satisfy the type.
func NewMutable(declared any, items []any, opts ...types.Option) (*Mutable, error) {
	s, err := newSequence(types.ResolverFor(opts...), declared, items)
	if err != nil {
		return nil, err
	}
	return &Mutable{s}, nil
}

// Immutable returns an immutable copy of the current contents.
func (m *Mutable) Immutable() *Immutable {
	return &Immutable{m.with(m.ToSlice())}
}

// Add appends item.
func (m *Mutable) Add(item any) error {
	next, err := m.add(item)
	if err != nil {
		return err
	}
	m.sequence = next
	return nil
}

// InsertAt inserts item before the element currently at index.
// The index must refer to an existing element.
func (m *Mutable) InsertAt(index int, item any) error {
	next, err := m.insertAt(index, item)
	if err != nil {
		return err
	}
	m.sequence = next
	return nil
}

// RemoveAt removes the element at index.
func (m *Mutable) RemoveAt(index int) error {
	next, err := m.removeAt(index)
	if err != nil {
		return err
	}
	m.sequence = next
	return nil
}

// DropFirst removes the first element. It does nothing on an empty container.
func (m *Mutable) DropFirst() { m.sequence = m.dropFirst() }

// DropLast removes the last element. It does nothing on an empty container.
func (m *Mutable) DropLast() { m.sequence = m.dropLast() }

// Clear removes every element; the declared type is kept.
func (m *Mutable) Clear() { m.sequence = m.clear() }

// Filter keeps the elements for which pred returns true.
func (m *Mutable) Filter(pred func(item any) bool) { m.sequence = m.filter(pred) }

// Reverse reverses the order of the elements.
func (m *Mutable) Reverse() { m.sequence = m.reverse() }

// Sort orders the elements with cmp, which returns a negative number, zero or a
// positive number when a sorts before, with or after b.
func (m *Mutable) Sort(cmp func(a, b any) int) { m.sequence = m.sort(cmp) }

// Shuffle randomizes the order of the elements.
func (m *Mutable) Shuffle() { m.sequence = m.shuffle() }

// Unique keeps the first occurrence of every distinct element.
func (m *Mutable) Unique() { m.sequence = m.unique() }

// Map replaces every element with fn(element). The declared type becomes the type of
// the first result; an empty container keeps its type.
func (m *Mutable) Map(fn func(item any) any) error {
	next, err := m.mapItems(fn)
	if err != nil {
		return err
	}
	m.sequence = next
	return nil
}

// Merge appends the elements of other after validating all of them.
func (m *Mutable) Merge(other Collection) error {
	next, err := m.merge(other)
	if err != nil {
		return err
	}
	m.sequence = next
	return nil
}

// Slice returns a new container with up to length elements starting at offset.
// A negative offset counts from the end; a negative length stops that many elements
// before the end.
func (m *Mutable) Slice(offset, length int) *Mutable {
	return &Mutable{m.slice(offset, length, true)}
}

// SliceFrom returns a new container with the elements from offset to the end.
func (m *Mutable) SliceFrom(offset int) *Mutable {
	return &Mutable{m.slice(offset, 0, false)}
}

// FilterIndexes returns the indexes of the elements matching pred as an integer
// container.
func (m *Mutable) FilterIndexes(pred func(index int, item any) bool) *Mutable {
	return &Mutable{m.filterIndexes(pred)}
}
