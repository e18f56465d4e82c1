package types

import (
	"fmt"
	"reflect"
)

// Kind enumerates the families of values a container can be declared to hold.
type Kind int

const (
	KindInvalid Kind = iota
	KindInteger
	KindString
	KindBoolean
	KindDouble
	KindCallable
	KindArray
	// KindClass covers structs, pointers, interfaces and any other named Go type.
	KindClass
)

var kindNames = map[Kind]string{
	KindInvalid:  "invalid",
	KindInteger:  "integer",
	KindString:   "string",
	KindBoolean:  "boolean",
	KindDouble:   "double",
	KindCallable: "callable",
	KindArray:    "array",
	KindClass:    "class",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsScalar reports whether k is one of integer, string, boolean or double.
func (k Kind) IsScalar() bool {
	switch k {
	case KindInteger, KindString, KindBoolean, KindDouble:
		return true
	}
	return false
}

// Type is a resolved, validated declared type.
// The zero value is invalid; use the constructors below or a Resolver.
type Type struct {
	kind  Kind
	name  string
	rtype reflect.Type // set for KindClass only
}

// Integer creates the integer type.
func Integer() Type { return Type{kind: KindInteger} }

// String creates the string type.
func String() Type { return Type{kind: KindString} }

// Boolean creates the boolean type.
func Boolean() Type { return Type{kind: KindBoolean} }

// Double creates the floating-point type.
func Double() Type { return Type{kind: KindDouble} }

// Callable creates the type satisfied by any non-nil func value.
func Callable() Type { return Type{kind: KindCallable} }

// Array creates the type satisfied by slices, arrays and Go maps.
func Array() Type { return Type{kind: KindArray} }

// Class creates a class identity for the given Go type.
// An empty name defaults to the Go type's own string form.
func Class(name string, t reflect.Type) Type {
	if t == nil {
		return Type{}
	}
	if name == "" {
		name = t.String()
	}
	return Type{kind: KindClass, name: name, rtype: t}
}

// ClassOf creates a class identity for T. Use an interface type parameter to declare
// an interface, e.g. ClassOf[fmt.Stringer]("Stringer").
func ClassOf[T any](name string) Type {
	return Class(name, reflect.TypeFor[T]())
}

// Kind returns the family of the type.
func (t Type) Kind() Kind { return t.kind }

// Name returns the human-readable name of the type (e.g. "integer", "main.User").
func (t Type) Name() string {
	if t.kind == KindClass {
		return t.name
	}
	return t.kind.String()
}

func (t Type) String() string { return t.Name() }

// Reflect returns the Go type behind a class identity, or nil for the other kinds.
func (t Type) Reflect() reflect.Type { return t.rtype }

// IsValid reports whether t was built by a constructor or a Resolver.
func (t Type) IsValid() bool {
	if t.kind == KindClass {
		return t.rtype != nil
	}
	return t.kind > KindInvalid && t.kind < KindClass
}

// IsKeyType reports whether t may be used as a dictionary key type.
func (t Type) IsKeyType() bool {
	return t.kind == KindInteger || t.kind == KindString
}

// IsInterface reports whether t is a class identity backed by a Go interface.
func (t Type) IsInterface() bool {
	return t.kind == KindClass && t.rtype.Kind() == reflect.Interface
}

// Equal reports whether t and other describe the same type.
// Class identities compare by Go type, not by registered name.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	if t.kind == KindClass {
		return t.rtype == other.rtype
	}
	return true
}
