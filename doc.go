/*
Package typedcoll provides containers whose element types are enforced at runtime.

Go generics fix an element type at compile time. typedcoll covers the cases where the
element type is only known while the program runs: manifests, plugin boundaries, values
decoded from YAML or JSON, or code that deals in any. Every insertion is checked against
the type declared when the container was created, and a violation is reported as an error
instead of being silently accepted.

# Containers

Two shapes are provided, each in a mutable and an immutable variant:

  - pkg/collection: an ordered sequence of elements of one declared type.
  - pkg/dictionary: an insertion-ordered map with a declared key type (integer or
    string) and a declared value type.

Mutable containers change in place. Immutable containers return a new container from
every transformation and never change after construction. Both variants share the same
read API and can be converted into each other.

# Types

Declared types are described by pkg/types. The scalar kinds (integer, string, boolean,
double), callables and arrays are always available by name. Named classes (structs and
interfaces) are bound to names through a types.Registry and checked by exact type,
interface satisfaction or struct embedding.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/typedcoll/pkg/collection"
	)

	func main() {
		scores, err := collection.NewMutable("int", []any{3, 1, 2})
		if err != nil {
			log.Fatal(err)
		}

		if err := scores.Add("four"); err != nil {
			fmt.Println(err) // value is not of type integer (got string)
		}
	}

# Command Line

cmd/typedcoll checks and renders containers declared in YAML or JSON manifests:

	typedcoll check containers.yaml --metrics
	typedcoll inspect containers.yaml
*/
package typedcoll
