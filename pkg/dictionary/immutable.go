package dictionary

import (
	"github.com/aretw0/typedcoll/pkg/collection"
	"github.com/aretw0/typedcoll/pkg/types"
)

// Immutable is a typed dictionary that never changes after construction.
type Immutable struct {
	*table
}

var _ Dictionary = (*Immutable)(nil)

// NewImmutable creates an immutable dictionary. See NewMutable.
func NewImmutable(keyType, valueType any, entries []Entry, opts ...types.Option) (*Immutable, error) {
	t, err := newTable(types.ResolverFor(opts...), keyType, valueType, entries)
	if err != nil {
		return nil, err
	}
	return &Immutable{t}, nil
}

// Mutable returns a mutable copy of the contents.
func (d *Immutable) Mutable() *Mutable {
	return &Mutable{d.clone()}
}

// Set returns a copy with value stored under key.
func (d *Immutable) Set(key, value any) (*Immutable, error) {
	next, err := d.set(key, value)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

// Remove returns a copy without key. An absent key yields an equal copy.
func (d *Immutable) Remove(key any) (*Immutable, error) {
	next, err := d.remove(key)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

func (d *Immutable) Filter(pred func(key, value any) bool) *Immutable {
	return &Immutable{d.filter(pred)}
}

// Map returns a copy transformed by fn; see Mutable.Map.
func (d *Immutable) Map(fn func(key, value any) any) (*Immutable, error) {
	next, err := d.mapEntries(fn)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

// Merge returns a copy holding the entries of both; other wins on conflicting keys.
func (d *Immutable) Merge(other Dictionary) (*Immutable, error) {
	next, err := d.merge(other)
	if err != nil {
		return nil, err
	}
	return &Immutable{next}, nil
}

func (d *Immutable) DropFirst() *Immutable { return &Immutable{d.dropFirst()} }

func (d *Immutable) DropLast() *Immutable { return &Immutable{d.dropLast()} }

func (d *Immutable) Clear() *Immutable { return &Immutable{d.clear()} }

func (d *Immutable) Unique(preserveKeys bool) *Immutable {
	return &Immutable{d.unique(preserveKeys)}
}

// ToCollection returns the values, in order, as an immutable collection of the value type.
func (d *Immutable) ToCollection() (*collection.Immutable, error) {
	return collection.NewImmutable(d.valueType, d.Values(), d.collectionOptions()...)
}
