package manifest

import (
	"errors"
	"fmt"

	"github.com/aretw0/typedcoll/pkg/collection"
	"github.com/aretw0/typedcoll/pkg/dictionary"
	"github.com/aretw0/typedcoll/pkg/types"
)

// Kinds of declared containers, as reported in errors and metrics.
const (
	KindCollection = "collection"
	KindDictionary = "dictionary"
)

// BuildError names the declaration that failed to build.
type BuildError struct {
	Kind string
	Name string
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Set holds the containers built from a manifest, in declaration order.
type Set struct {
	Collections  []Named[collection.Collection]
	Dictionaries []Named[dictionary.Dictionary]
}

// Named pairs a built container with its declared name.
type Named[T any] struct {
	Name      string
	Container T
}

// Build creates the declared collection.
func (s CollectionSpec) Build(opts ...types.Option) (collection.Collection, error) {
	c, err := s.build(opts)
	if err != nil {
		return nil, &BuildError{Kind: KindCollection, Name: s.Name, Err: err}
	}
	return c, nil
}

func (s CollectionSpec) build(opts []types.Option) (collection.Collection, error) {
	m, err := collection.NewMutable(s.Type, s.Items, opts...)
	if err != nil {
		return nil, err
	}
	if s.Sorted {
		cmp, err := collection.NaturalOrder(m.Type())
		if err != nil {
			return nil, fmt.Errorf("sorted: %w", err)
		}
		m.Sort(cmp)
	}
	if s.Mutable {
		return m, nil
	}
	return m.Immutable(), nil
}

// Build creates the declared dictionary.
func (s DictionarySpec) Build(opts ...types.Option) (dictionary.Dictionary, error) {
	entries := make([]dictionary.Entry, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = dictionary.Entry{Key: e.Key, Value: e.Value}
	}

	var (
		d   dictionary.Dictionary
		err error
	)
	if s.Mutable {
		d, err = dictionary.NewMutable(s.KeyType, s.ValueType, entries, opts...)
	} else {
		d, err = dictionary.NewImmutable(s.KeyType, s.ValueType, entries, opts...)
	}
	if err != nil {
		return nil, &BuildError{Kind: KindDictionary, Name: s.Name, Err: err}
	}
	return d, nil
}

// Build creates every declared container. Declarations that fail are left out of the
// returned Set and reported together in the joined error.
func (m *Manifest) Build(opts ...types.Option) (*Set, error) {
	set := &Set{}
	var errs []error

	for _, decl := range m.Collections {
		c, err := decl.Build(opts...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set.Collections = append(set.Collections, Named[collection.Collection]{Name: decl.Name, Container: c})
	}
	for _, decl := range m.Dictionaries {
		d, err := decl.Build(opts...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set.Dictionaries = append(set.Dictionaries, Named[dictionary.Dictionary]{Name: decl.Name, Container: d})
	}

	return set, errors.Join(errs...)
}
