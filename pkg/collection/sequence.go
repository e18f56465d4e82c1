package collection

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/aretw0/typedcoll/pkg/types"
)

// Collection is the read-only view shared by Mutable and Immutable.
type Collection interface {
	Type() types.Type
	Len() int
	IsEmpty() bool
	At(index int) (any, error)
	Contains(item any) bool
	First() (any, bool)
	Last() (any, bool)
	FirstIndex() (int, bool)
	LastIndex() (int, bool)
	FindFirst(pred func(index int, item any) bool) (any, bool)
	FindLast(pred func(index int, item any) bool) (any, bool)
	FindFirstIndex(pred func(index int, item any) bool) (int, bool)
	FindLastIndex(pred func(index int, item any) bool) (int, bool)
	Reduce(fn func(acc, item any) any, initial any) any
	ToSlice() []any
	All() iter.Seq2[int, any]
}

// sequence is the persistent core. Derivations never modify the receiver; they
// return a successor which the wrappers either hand out or rebind to.
type sequence struct {
	typ      types.Type
	items    []any
	resolver *types.Resolver
}

func newSequence(resolver *types.Resolver, declared any, items []any) (*sequence, error) {
	typ, err := resolver.ResolveDeclared(declared)
	if err != nil {
		return nil, err
	}
	if err := types.ValidateAll(items, typ); err != nil {
		return nil, err
	}
	return &sequence{typ: typ, items: slices.Clone(items), resolver: resolver}, nil
}

// with returns a successor of the same declared type owning items.
func (s *sequence) with(items []any) *sequence {
	return &sequence{typ: s.typ, items: items, resolver: s.resolver}
}

// Type returns the declared element type.
func (s *sequence) Type() types.Type { return s.typ }

// Len returns the number of elements.
func (s *sequence) Len() int { return len(s.items) }

// IsEmpty reports whether the container has no elements.
func (s *sequence) IsEmpty() bool { return len(s.items) == 0 }

// At returns the element at index.
func (s *sequence) At(index int) (any, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return s.items[index], nil
}

// Contains reports whether an identical element is present.
func (s *sequence) Contains(item any) bool {
	return slices.ContainsFunc(s.items, func(v any) bool { return types.Identical(v, item) })
}

// First returns the first element, or false when empty.
func (s *sequence) First() (any, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[0], true
}

// Last returns the last element, or false when empty.
func (s *sequence) Last() (any, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// FirstIndex returns 0, or false when empty.
func (s *sequence) FirstIndex() (int, bool) {
	return 0, len(s.items) > 0
}

// LastIndex returns len-1, or false when empty.
func (s *sequence) LastIndex() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return len(s.items) - 1, true
}

func (s *sequence) FindFirstIndex(pred func(index int, item any) bool) (int, bool) {
	for i, item := range s.items {
		if pred(i, item) {
			return i, true
		}
	}
	return 0, false
}

func (s *sequence) FindLastIndex(pred func(index int, item any) bool) (int, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if pred(i, s.items[i]) {
			return i, true
		}
	}
	return 0, false
}

func (s *sequence) FindFirst(pred func(index int, item any) bool) (any, bool) {
	if i, ok := s.FindFirstIndex(pred); ok {
		return s.items[i], true
	}
	return nil, false
}

func (s *sequence) FindLast(pred func(index int, item any) bool) (any, bool) {
	if i, ok := s.FindLastIndex(pred); ok {
		return s.items[i], true
	}
	return nil, false
}

// Reduce folds the elements from first to last.
func (s *sequence) Reduce(fn func(acc, item any) any, initial any) any {
	acc := initial
	for _, item := range s.items {
		acc = fn(acc, item)
	}
	return acc
}

// ToSlice returns a copy of the elements. The result is never nil.
func (s *sequence) ToSlice() []any {
	return append(make([]any, 0, len(s.items)), s.items...)
}

// All iterates over index/element pairs in order.
func (s *sequence) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i, item := range s.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

func (s *sequence) checkIndex(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: index %d, length %d", types.ErrIndexOutOfRange, index, len(s.items))
	}
	return nil
}

// --- Derivations ---

func (s *sequence) add(item any) (*sequence, error) {
	if err := types.Validate(item, s.typ); err != nil {
		return nil, err
	}
	items := make([]any, len(s.items), len(s.items)+1)
	copy(items, s.items)
	return s.with(append(items, item)), nil
}

func (s *sequence) insertAt(index int, item any) (*sequence, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	if err := types.Validate(item, s.typ); err != nil {
		return nil, err
	}
	return s.with(slices.Insert(slices.Clone(s.items), index, item)), nil
}

func (s *sequence) removeAt(index int) (*sequence, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return s.with(slices.Delete(slices.Clone(s.items), index, index+1)), nil
}

func (s *sequence) dropFirst() *sequence {
	if len(s.items) == 0 {
		return s.with(nil)
	}
	return s.with(slices.Clone(s.items[1:]))
}

func (s *sequence) dropLast() *sequence {
	if len(s.items) == 0 {
		return s.with(nil)
	}
	return s.with(slices.Clone(s.items[:len(s.items)-1]))
}

func (s *sequence) clear() *sequence {
	return s.with(nil)
}

func (s *sequence) filter(pred func(item any) bool) *sequence {
	var items []any
	for _, item := range s.items {
		if pred(item) {
			items = append(items, item)
		}
	}
	return s.with(items)
}

func (s *sequence) reverse() *sequence {
	items := slices.Clone(s.items)
	slices.Reverse(items)
	return s.with(items)
}

func (s *sequence) sort(cmp func(a, b any) int) *sequence {
	items := slices.Clone(s.items)
	slices.SortStableFunc(items, cmp)
	return s.with(items)
}

// mapItems re-declares the successor with the type of the first result. Later results
// are not checked; a drifting element surfaces on the next validating operation.
func (s *sequence) mapItems(fn func(item any) any) (*sequence, error) {
	if len(s.items) == 0 {
		return s.with(nil), nil
	}
	items := make([]any, len(s.items))
	for i, item := range s.items {
		items[i] = fn(item)
	}
	typ, err := s.resolver.Infer(items[0])
	if err != nil {
		return nil, fmt.Errorf("map: %w", err)
	}
	return &sequence{typ: typ, items: items, resolver: s.resolver}, nil
}

func (s *sequence) merge(other Collection) (*sequence, error) {
	foreign := other.ToSlice()
	if err := types.ValidateAll(foreign, s.typ); err != nil {
		return nil, err
	}
	return s.with(slices.Concat(s.items, foreign)), nil
}

// slice follows array slice conventions: a negative offset counts from the end, a
// negative length stops that many elements before the end, and out-of-range bounds
// are clamped.
func (s *sequence) slice(offset, length int, bounded bool) *sequence {
	n := len(s.items)
	if offset < 0 {
		offset = max(n+offset, 0)
	}
	if offset > n {
		offset = n
	}
	end := n
	if bounded {
		switch {
		case length < 0:
			end = n + length
		case length <= n-offset:
			end = offset + length
		}
		end = min(max(end, offset), n)
	}
	return s.with(slices.Clone(s.items[offset:end]))
}

func (s *sequence) shuffle() *sequence {
	items := slices.Clone(s.items)
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return s.with(items)
}

func (s *sequence) unique() *sequence {
	var items []any
	for _, item := range s.items {
		if !slices.ContainsFunc(items, func(v any) bool { return types.Identical(v, item) }) {
			items = append(items, item)
		}
	}
	return s.with(items)
}

func (s *sequence) filterIndexes(pred func(index int, item any) bool) *sequence {
	var indexes []any
	for i, item := range s.items {
		if pred(i, item) {
			indexes = append(indexes, i)
		}
	}
	return &sequence{typ: types.Integer(), items: indexes, resolver: s.resolver}
}
