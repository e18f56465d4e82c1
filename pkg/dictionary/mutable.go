package dictionary

import (
	"github.com/aretw0/typedcoll/pkg/collection"
	"github.com/aretw0/typedcoll/pkg/types"
)

// Mutable is a typed dictionary that changes in place.
// It must not be mutated from several goroutines without external synchronization.
type Mutable struct {
	*table
}

var _ Dictionary = (*Mutable)(nil)

// NewMutable creates a mutable dictionary. The key type must resolve to integer or
// string. Entries are validated eagerly; on failure no dictionary is produced.
func NewMutable(keyType, valueType any, entries []Entry, opts ...types.Option) (*Mutable, error) {
	t, err := newTable(types.ResolverFor(opts...), keyType, valueType, entries)
	if err != nil {
		return nil, err
	}
	return &Mutable{t}, nil
}

// Immutable returns an immutable copy of the current contents.
func (d *Mutable) Immutable() *Immutable {
	return &Immutable{d.clone()}
}

// Set stores value under key, keeping the position of an existing key.
func (d *Mutable) Set(key, value any) error {
	next, err := d.set(key, value)
	if err != nil {
		return err
	}
	d.table = next
	return nil
}

// Remove deletes key. Removing an absent key is not an error; a key of the wrong
// type is.
func (d *Mutable) Remove(key any) error {
	next, err := d.remove(key)
	if err != nil {
		return err
	}
	d.table = next
	return nil
}

// Filter keeps the entries for which pred returns true.
func (d *Mutable) Filter(pred func(key, value any) bool) { d.table = d.filter(pred) }

// Map replaces every entry with the result of fn. A returned Entry replaces key and
// value; anything else replaces the value only. The declared types become those of
// the first produced entry.
func (d *Mutable) Map(fn func(key, value any) any) error {
	next, err := d.mapEntries(fn)
	if err != nil {
		return err
	}
	d.table = next
	return nil
}

// Merge copies the entries of other into d; other wins on conflicting keys.
// Nothing is copied unless every entry of other is valid for d.
func (d *Mutable) Merge(other Dictionary) error {
	next, err := d.merge(other)
	if err != nil {
		return err
	}
	d.table = next
	return nil
}

// DropFirst removes the oldest entry. It does nothing when empty.
func (d *Mutable) DropFirst() { d.table = d.dropFirst() }

// DropLast removes the newest entry. It does nothing when empty.
func (d *Mutable) DropLast() { d.table = d.dropLast() }

// Clear removes every entry.
func (d *Mutable) Clear() { d.table = d.clear() }

// Unique keeps the first entry of every distinct value.
func (d *Mutable) Unique(preserveKeys bool) { d.table = d.unique(preserveKeys) }

// ToCollection returns the values, in order, as a mutable collection of the value type.
func (d *Mutable) ToCollection() (*collection.Mutable, error) {
	return collection.NewMutable(d.valueType, d.Values(), d.collectionOptions()...)
}
