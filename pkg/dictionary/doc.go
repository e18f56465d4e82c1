// Package dictionary provides insertion-ordered maps with a declared key type
// (integer or string) and a declared value type, in mutable and immutable flavours.
//
// Insertion order matters: FirstKey, LastKey, DropFirst and DropLast follow it, and
// overwriting an existing key keeps its position.
//
//	d, err := dictionary.NewImmutable("string", "int", []dictionary.Entry{
//	    {Key: "a", Value: 1},
//	    {Key: "b", Value: 2},
//	})
//	d2, err := d.Set("c", 3)      // d is unchanged
//	_, err = d2.Set(1, 4)         // types.ErrKeyTypeMismatch
//	values, err := d2.ToCollection() // [1 2 3], declared int
//
// Integer keys of any width are stored as int, so Get(int64(1)) finds the entry set
// with key 1.
package dictionary
