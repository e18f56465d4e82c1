package types

import (
	"fmt"
	"reflect"
)

// synonyms maps declaration keywords to kinds.
var synonyms = map[string]Kind{
	"int":      KindInteger,
	"integer":  KindInteger,
	"string":   KindString,
	"bool":     KindBoolean,
	"boolean":  KindBoolean,
	"float":    KindDouble,
	"double":   KindDouble,
	"callable": KindCallable,
	"array":    KindArray,
}

// Resolver turns declaration tokens into Types and infers the Type of runtime values.
// Class names are looked up in its Registry; a nil Registry only knows the keywords.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver backed by reg (which may be nil).
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Registry returns the class registry the resolver consults.
func (r *Resolver) Registry() *Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Option configures how containers resolve their declared types.
type Option func(*options)

type options struct {
	registry *Registry
}

// WithRegistry makes the classes of reg available as declared types.
func WithRegistry(reg *Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// ResolverFor builds the Resolver described by opts.
func ResolverFor(opts ...Option) *Resolver {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return NewResolver(o.registry)
}

// ResolveDeclared resolves a declared element or value type.
//
// Accepted tokens are a Type, a non-class Kind, a reflect.Type, or a string that is
// either a keyword ("int", "integer", "float", "double", "bool", "boolean", "string",
// "callable", "array") or a name in the registry.
func (r *Resolver) ResolveDeclared(token any) (Type, error) {
	switch tok := token.(type) {
	case Type:
		if !tok.IsValid() {
			return Type{}, fmt.Errorf("%w: zero Type", ErrInvalidType)
		}
		return tok, nil
	case Kind:
		if tok <= KindInvalid || tok >= KindClass {
			return Type{}, fmt.Errorf("%w: kind %s needs a class identity", ErrInvalidType, tok)
		}
		return Type{kind: tok}, nil
	case reflect.Type:
		if tok == nil {
			return Type{}, fmt.Errorf("%w: nil Go type", ErrInvalidType)
		}
		name, _ := r.Registry().NameOf(tok)
		return Class(name, tok), nil
	case string:
		if kind, ok := synonyms[tok]; ok {
			return Type{kind: kind}, nil
		}
		if t, ok := r.Registry().Lookup(tok); ok {
			return t, nil
		}
		return Type{}, fmt.Errorf("%w: %q is not supported or does not exist", ErrInvalidType, tok)
	default:
		return Type{}, fmt.Errorf("%w: unsupported token %T", ErrInvalidType, token)
	}
}

// ResolveKey resolves a declared key type; only integer and string are accepted.
func (r *Resolver) ResolveKey(token any) (Type, error) {
	t, err := r.ResolveDeclared(token)
	if err != nil {
		return Type{}, fmt.Errorf("%w: %w", ErrInvalidKeyType, err)
	}
	if !t.IsKeyType() {
		return Type{}, fmt.Errorf("%w: %s is not supported for keys", ErrInvalidKeyType, t.Name())
	}
	return t, nil
}

// Infer determines the Type of a runtime value.
//
// Non-nil funcs are callable; integer, float, bool and string kinds map to the scalar
// types (named types included, so time.Duration is an integer); slices, arrays and maps
// are arrays; everything else is a class identity named after its registry entry or,
// when unregistered, its Go type. Nil, channels and unsafe pointers are unsupported.
func (r *Resolver) Infer(value any) (Type, error) {
	if value == nil {
		return Type{}, fmt.Errorf("%w: nil", ErrUnsupportedType)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Func:
		if rv.IsNil() {
			return Type{}, fmt.Errorf("%w: nil func", ErrUnsupportedType)
		}
		return Callable(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Integer(), nil
	case reflect.Float32, reflect.Float64:
		return Double(), nil
	case reflect.Bool:
		return Boolean(), nil
	case reflect.String:
		return String(), nil
	case reflect.Slice, reflect.Array, reflect.Map:
		return Array(), nil
	case reflect.Chan, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return Type{}, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	rt := rv.Type()
	name, _ := r.Registry().NameOf(rt)
	return Class(name, rt), nil
}
