package types

import (
	"fmt"
	"math"
	"reflect"
)

// plain infers without a registry; names do not matter for equality checks.
var plain = &Resolver{}

// Validate checks that value satisfies the declared type.
//
// Callable accepts any non-nil func. A class accepts values of the same Go type,
// values implementing it (interfaces) and structs embedding it. Every other type
// requires the inferred type of value to be exactly the declared one.
func Validate(value any, declared Type) error {
	if !declared.IsValid() {
		return fmt.Errorf("%w: zero Type", ErrInvalidType)
	}
	if !matches(value, declared) {
		return &MismatchError{Expected: declared, Value: value}
	}
	return nil
}

// ValidateKey checks that key satisfies the declared key type.
func ValidateKey(key any, declared Type) error {
	if !declared.IsKeyType() {
		return fmt.Errorf("%w: %s is not supported for keys", ErrInvalidKeyType, declared.Name())
	}
	inferred, err := plain.Infer(key)
	if err != nil || !inferred.Equal(declared) || overflowsInt(key) {
		return &MismatchError{Expected: declared, Value: key, Key: true}
	}
	return nil
}

// ValidateAll validates values in order and stops at the first failure.
// The returned error names the position of the offending value.
func ValidateAll(values []any, declared Type) error {
	for i, v := range values {
		if err := Validate(v, declared); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func matches(value any, declared Type) bool {
	switch declared.kind {
	case KindCallable:
		return isCallable(value)
	case KindClass:
		return instanceOf(value, declared.rtype)
	}
	inferred, err := plain.Infer(value)
	if err != nil {
		return false
	}
	return inferred.Equal(declared)
}

func isCallable(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func instanceOf(value any, target reflect.Type) bool {
	if value == nil {
		return false
	}
	vt := reflect.TypeOf(value)
	if vt == target {
		return true
	}
	if target.Kind() == reflect.Interface {
		return vt.Implements(target)
	}
	return embeds(vt, indirect(target), make(map[reflect.Type]bool))
}

// embeds reports whether vt, a struct or pointer to struct, embeds base at any depth.
func embeds(vt, base reflect.Type, seen map[reflect.Type]bool) bool {
	vt = indirect(vt)
	if vt.Kind() != reflect.Struct || seen[vt] {
		return false
	}
	seen[vt] = true
	for i := 0; i < vt.NumField(); i++ {
		f := vt.Field(i)
		if !f.Anonymous {
			continue
		}
		if indirect(f.Type) == base || embeds(f.Type, base, seen) {
			return true
		}
	}
	return false
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// overflowsInt reports whether key is an unsigned integer too large for int, which
// NormalizeKey could not store without colliding with another key.
func overflowsInt(key any) bool {
	rv := reflect.ValueOf(key)
	return rv.CanUint() && rv.Uint() > math.MaxInt
}

// NormalizeKey converts every integer kind to int so that keys of different integer
// widths address the same entry. Other values are returned unchanged. Unsigned keys
// above math.MaxInt are rejected by ValidateKey and must not reach NormalizeKey.
func NormalizeKey(key any) any {
	if key == nil {
		return nil
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint())
	case reflect.String:
		return rv.String()
	}
	return key
}

// Identical is the strict equality used for membership tests and uniqueness.
// Values must share their dynamic Go type. Funcs compare by code pointer, slices and
// maps by deep equality, everything else with ==.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice, reflect.Map:
		return reflect.DeepEqual(a, b)
	}
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	return reflect.DeepEqual(a, b)
}
