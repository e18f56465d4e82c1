// Package collection provides ordered, zero-indexed sequences whose elements are all
// checked against a single declared type.
//
// Two flavours share one implementation:
//
//   - Mutable changes in place. Fallible operations return an error and leave the
//     receiver untouched when they fail.
//   - Immutable never changes. Every operation returns a new, independent
//     container, so instances can be shared freely between goroutines.
//
// Usage:
//
//	scores, err := collection.NewImmutable("int", []any{3, 1, 2})
//	if err != nil {
//	    // errors.Is(err, types.ErrTypeMismatch)
//	}
//	cmp, _ := collection.NaturalOrder(scores.Type())
//	sorted := scores.Sort(cmp)
//	_, err = sorted.Add("four") // types.ErrTypeMismatch, sorted is unchanged
//
// Callbacks given to Filter, Sort, Map, Reduce and the Find methods run synchronously
// and must not mutate the container they are called on.
package collection
