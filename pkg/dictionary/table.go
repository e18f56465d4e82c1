package dictionary

import (
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/aretw0/typedcoll/pkg/types"
)

// Entry is one key/value pair. Returning an Entry from a Map callback re-keys the value.
type Entry struct {
	Key   any
	Value any
}

// Dictionary is the read-only view shared by Mutable and Immutable.
type Dictionary interface {
	KeyType() types.Type
	ValueType() types.Type
	Len() int
	IsEmpty() bool
	HasKey(key any) (bool, error)
	HasValue(value any) (bool, error)
	Get(key any) (any, bool, error)
	Keys() []any
	Values() []any
	Entries() []Entry
	FirstKey() (any, bool)
	LastKey() (any, bool)
	FirstValue() (any, bool)
	LastValue() (any, bool)
	Reduce(fn func(acc, value any) any, initial any) any
	All() iter.Seq2[any, any]
}

// table is the persistent core: derivations build a fresh ordered map and never touch
// the receiver's.
type table struct {
	keyType   types.Type
	valueType types.Type
	entries   *orderedmap.OrderedMap[any, any]
	resolver  *types.Resolver
}

func newTable(resolver *types.Resolver, keyToken, valueToken any, entries []Entry) (*table, error) {
	keyType, err := resolver.ResolveKey(keyToken)
	if err != nil {
		return nil, err
	}
	valueType, err := resolver.ResolveDeclared(valueToken)
	if err != nil {
		return nil, err
	}
	if err := validateEntries(entries, keyType, valueType); err != nil {
		return nil, err
	}

	om := orderedmap.New[any, any]()
	for _, e := range entries {
		om.Set(types.NormalizeKey(e.Key), e.Value)
	}
	return &table{keyType: keyType, valueType: valueType, entries: om, resolver: resolver}, nil
}

func validateEntries(entries []Entry, keyType, valueType types.Type) error {
	for i, e := range entries {
		if err := types.ValidateKey(e.Key, keyType); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	for i, e := range entries {
		if err := types.Validate(e.Value, valueType); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

// successor returns an empty table with the same declared types.
func (t *table) successor() *table {
	return &table{
		keyType:   t.keyType,
		valueType: t.valueType,
		entries:   orderedmap.New[any, any](),
		resolver:  t.resolver,
	}
}

func (t *table) clone() *table {
	next := t.successor()
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		next.entries.Set(p.Key, p.Value)
	}
	return next
}

// KeyType returns the declared key type.
func (t *table) KeyType() types.Type { return t.keyType }

// ValueType returns the declared value type.
func (t *table) ValueType() types.Type { return t.valueType }

// Len returns the number of entries.
func (t *table) Len() int { return t.entries.Len() }

// IsEmpty reports whether there are no entries.
func (t *table) IsEmpty() bool { return t.entries.Len() == 0 }

// HasKey reports whether key is present. It fails if key cannot satisfy the key type.
func (t *table) HasKey(key any) (bool, error) {
	if err := types.ValidateKey(key, t.keyType); err != nil {
		return false, err
	}
	_, ok := t.entries.Get(types.NormalizeKey(key))
	return ok, nil
}

// HasValue reports whether an identical value is present. It fails if value cannot
// satisfy the value type.
func (t *table) HasValue(value any) (bool, error) {
	if err := types.Validate(value, t.valueType); err != nil {
		return false, err
	}
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		if types.Identical(p.Value, value) {
			return true, nil
		}
	}
	return false, nil
}

// Get returns the value stored under key; ok is false when the key is absent.
func (t *table) Get(key any) (value any, ok bool, err error) {
	if err := types.ValidateKey(key, t.keyType); err != nil {
		return nil, false, err
	}
	value, ok = t.entries.Get(types.NormalizeKey(key))
	return value, ok, nil
}

// Keys returns the keys in insertion order.
func (t *table) Keys() []any {
	keys := make([]any, 0, t.entries.Len())
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the values in insertion order.
func (t *table) Values() []any {
	values := make([]any, 0, t.entries.Len())
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		values = append(values, p.Value)
	}
	return values
}

// Entries returns the key/value pairs in insertion order.
func (t *table) Entries() []Entry {
	entries := make([]Entry, 0, t.entries.Len())
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		entries = append(entries, Entry{Key: p.Key, Value: p.Value})
	}
	return entries
}

func (t *table) FirstKey() (any, bool) {
	if p := t.entries.Oldest(); p != nil {
		return p.Key, true
	}
	return nil, false
}

func (t *table) LastKey() (any, bool) {
	if p := t.entries.Newest(); p != nil {
		return p.Key, true
	}
	return nil, false
}

func (t *table) FirstValue() (any, bool) {
	if p := t.entries.Oldest(); p != nil {
		return p.Value, true
	}
	return nil, false
}

func (t *table) LastValue() (any, bool) {
	if p := t.entries.Newest(); p != nil {
		return p.Value, true
	}
	return nil, false
}

// Reduce folds the values in insertion order.
func (t *table) Reduce(fn func(acc, value any) any, initial any) any {
	acc := initial
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		acc = fn(acc, p.Value)
	}
	return acc
}

// All iterates over key/value pairs in insertion order.
func (t *table) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for p := t.entries.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// --- Derivations ---

func (t *table) set(key, value any) (*table, error) {
	if err := types.ValidateKey(key, t.keyType); err != nil {
		return nil, err
	}
	if err := types.Validate(value, t.valueType); err != nil {
		return nil, err
	}
	next := t.clone()
	next.entries.Set(types.NormalizeKey(key), value)
	return next, nil
}

func (t *table) remove(key any) (*table, error) {
	if err := types.ValidateKey(key, t.keyType); err != nil {
		return nil, err
	}
	next := t.clone()
	next.entries.Delete(types.NormalizeKey(key))
	return next, nil
}

func (t *table) filter(pred func(key, value any) bool) *table {
	next := t.successor()
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		if pred(p.Key, p.Value) {
			next.entries.Set(p.Key, p.Value)
		}
	}
	return next
}

// mapEntries declares the successor with the key and value types of the first
// produced entry. Later values are not checked against them; later keys only need to
// be usable as keys at all.
func (t *table) mapEntries(fn func(key, value any) any) (*table, error) {
	om := orderedmap.New[any, any]()
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		key, value := p.Key, fn(p.Key, p.Value)
		if e, ok := value.(Entry); ok {
			key, value = e.Key, e.Value
		}
		kt, err := t.resolver.Infer(key)
		if err != nil || !kt.IsKeyType() || types.ValidateKey(key, kt) != nil {
			return nil, fmt.Errorf("map: %w: %T cannot be used as a key", types.ErrInvalidKeyType, key)
		}
		om.Set(types.NormalizeKey(key), value)
	}

	next := &table{keyType: t.keyType, valueType: t.valueType, entries: om, resolver: t.resolver}
	first := om.Oldest()
	if first == nil {
		return next, nil
	}
	keyType, err := t.resolver.Infer(first.Key)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	valueType, err := t.resolver.Infer(first.Value)
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	next.keyType, next.valueType = keyType, valueType
	return next, nil
}

// merge validates every entry of other before touching anything. Keys already present
// keep their position and take other's value; new keys are appended in other's order.
func (t *table) merge(other Dictionary) (*table, error) {
	foreign := other.Entries()
	if err := validateEntries(foreign, t.keyType, t.valueType); err != nil {
		return nil, err
	}
	next := t.clone()
	for _, e := range foreign {
		next.entries.Set(types.NormalizeKey(e.Key), e.Value)
	}
	return next, nil
}

func (t *table) dropFirst() *table {
	next := t.clone()
	if p := next.entries.Oldest(); p != nil {
		next.entries.Delete(p.Key)
	}
	return next
}

func (t *table) dropLast() *table {
	next := t.clone()
	if p := next.entries.Newest(); p != nil {
		next.entries.Delete(p.Key)
	}
	return next
}

func (t *table) clear() *table {
	return t.successor()
}

// unique keeps the first entry of every distinct value. Without preserveKeys the
// survivors are renumbered 0..n-1 and the key type becomes integer.
func (t *table) unique(preserveKeys bool) *table {
	next := t.successor()
	if !preserveKeys {
		next.keyType = types.Integer()
	}
	var seen []any
	for p := t.entries.Oldest(); p != nil; p = p.Next() {
		dup := false
		for _, v := range seen {
			if types.Identical(v, p.Value) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		key := p.Key
		if !preserveKeys {
			key = len(seen)
		}
		seen = append(seen, p.Value)
		next.entries.Set(key, p.Value)
	}
	return next
}

func (t *table) collectionOptions() []types.Option {
	return []types.Option{types.WithRegistry(t.resolver.Registry())}
}
