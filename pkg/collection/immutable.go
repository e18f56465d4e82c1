package collection

import (
	"github.com/aretw0/typedcoll/pkg/types"
)

// Immutable is a typed sequence that never changes after construction.
// Every operation returns a new container; the receiver stays valid and untouched.
type Immutable struct {
	*sequence
}

var _ Collection = (*Immutable)(nil)

// NewImmutable creates an immutable sequence of the declared type holding items in order.
// It fails without producing a container if any item does not satisfy the type.
func NewImmutable(declared any, items []any, opts ...types.Option) (*Immutable, error) {
	s, err := newSequence(types.ResolverFor(opts...), declared, items)
	if err != nil {
		return nil, err
	}
	return &Immutable{s}, nil
}

// Mutable returns a mutable copy of the contents.
func (c *Immutable) Mutable() *Mutable {
	return &Mutable{c.with(c.ToSlice())}
}

// Add returns a copy with item appended.
func (c *Immutable) Add(item any) (*Immutable, error) {
	next, err := c.add(item)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

// InsertAt returns a copy with item inserted before the element at index.
func (c *Immutable) InsertAt(index int, item any) (*Immutable, error) {
	next, err := c.insertAt(index, item)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

// RemoveAt returns a copy without the element at index.
func (c *Immutable) RemoveAt(index int) (*Immutable, error) {
	next, err := c.removeAt(index)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

// DropFirst returns a copy without the first element.
func (c *Immutable) DropFirst() *Immutable { return &Immutable{c.dropFirst()} }

// DropLast returns a copy without the last element.
func (c *Immutable) DropLast() *Immutable { return &Immutable{c.dropLast()} }

// Clear returns an empty container of the same declared type.
func (c *Immutable) Clear() *Immutable { return &Immutable{c.clear()} }

func (c *Immutable) Filter(pred func(item any) bool) *Immutable {
	return &Immutable{c.filter(pred)}
}

func (c *Immutable) Reverse() *Immutable { return &Immutable{c.reverse()} }

func (c *Immutable) Sort(cmp func(a, b any) int) *Immutable {
	return &Immutable{c.sort(cmp)}
}

func (c *Immutable) Shuffle() *Immutable { return &Immutable{c.shuffle()} }

func (c *Immutable) Unique() *Immutable { return &Immutable{c.unique()} }

// Map returns a copy holding fn(element) for every element, declared with the type of
// the first result.
func (c *Immutable) Map(fn func(item any) any) (*Immutable, error) {
	next, err := c.mapItems(fn)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

// Merge returns a copy with the elements of other appended.
func (c *Immutable) Merge(other Collection) (*Immutable, error) {
	next, err := c.merge(other)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

func (c *Immutable) Slice(offset, length int) *Immutable {
	return &Immutable{c.slice(offset, length, true)}
}

func (c *Immutable) SliceFrom(offset int) *Immutable {
	return &Immutable{c.slice(offset, 0, false)}
}

func (c *Immutable) FilterIndexes(pred func(index int, item any) bool) *Immutable {
	return &Immutable{c.filterIndexes(pred)}
}
