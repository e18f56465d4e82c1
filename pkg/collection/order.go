package collection

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/utils"

	"github.com/aretw0/typedcoll/pkg/types"
)

// Comparator orders two elements: negative if a < b, zero if equal, positive if a > b.
type Comparator = utils.Comparator

// NaturalOrder returns the ascending comparator for a scalar element type.
// Integers of different widths and signedness compare by value; false sorts before true.
//
// The comparators assume every element has the kind of t. A collection whose elements
// drifted after a Map makes Sort panic with such a comparator.
func NaturalOrder(t types.Type) (Comparator, error) {
	switch t.Kind() {
	case types.KindInteger:
		return compareIntegers, nil
	case types.KindDouble:
		return func(a, b any) int {
			return utils.Float64Comparator(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case types.KindString:
		return func(a, b any) int {
			return utils.StringComparator(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	case types.KindBoolean:
		return func(a, b any) int {
			x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			}
			return 1
		}, nil
	}
	return nil, fmt.Errorf("%w: %s has no natural order", types.ErrUnsupportedType, t.Name())
}

func compareIntegers(a, b any) int {
	x, y := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case x.CanInt() && y.CanInt():
		return utils.Int64Comparator(x.Int(), y.Int())
	case x.CanUint() && y.CanUint():
		return utils.UInt64Comparator(x.Uint(), y.Uint())
	case x.CanInt():
		if x.Int() < 0 {
			return -1
		}
		return utils.UInt64Comparator(uint64(x.Int()), y.Uint())
	}
	if y.Int() < 0 {
		return 1
	}
	return utils.UInt64Comparator(x.Uint(), uint64(y.Int()))
}
