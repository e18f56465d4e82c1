// Package types is the runtime type system shared by the typed containers.
//
// A container declares the type of its elements once, at construction, and every
// value that enters it afterwards is checked against that declaration. This package
// provides the pieces for doing so:
//
//   - Type: a closed set of kinds (integer, string, boolean, double, callable, array)
//     plus class identities for structs, pointers and interfaces.
//   - Registry: an explicit table of named classes and interfaces supplied by the
//     host application.
//   - Resolver: turns declaration tokens ("int", types.String(), a registered class
//     name) into a Type and infers the Type of arbitrary runtime values.
//   - Validate / ValidateKey: check a value or key against a declared Type.
//
// Basic usage:
//
//	reg := types.NewRegistry()
//	types.RegisterType[fmt.Stringer](reg, "Stringer")
//
//	r := types.NewResolver(reg)
//	typ, err := r.ResolveDeclared("Stringer")
//	if err != nil {
//	    // errors.Is(err, types.ErrInvalidType)
//	}
//
//	if err := types.Validate(time.Second, typ); err != nil {
//	    // errors.Is(err, types.ErrTypeMismatch)
//	}
//
// Scalar checks are exact: a float64 never satisfies Integer and an int never
// satisfies Double.
package types
