// Package ir provides the intermediate tree that form values are encoded to
// before serialization.
//
// # Overview
//
// A value being form encoded is first mapped to a tree of *Node and then the
// tree is serialized into "key=value" pairs.  Keeping the tree separate from
// both steps makes each easy to test: encoders only need to produce a tree and
// serializers only need to walk one.
//
// # Node Types
//
//   - ScalarType: a leaf, its text is in String.
//   - SequenceType: an ordered list of children in Values.
//   - KeyedType: an ordered list of entries; Fields[i] is the key for Values[i].
//
// Keys of a keyed node are unique.  Insertion order is preserved; sorting
// happens at serialization time if it is requested.
//
// # Building Trees
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromString("1")},
//	    {Key: "c", Val: ir.FromSlice([]*ir.Node{
//	        ir.FromString("2"),
//	        ir.FromString("3"),
//	    })},
//	})
//
// Trees are usually built incrementally with Set, which writes a value at a
// kpath.KPath and creates or coerces the intermediate containers on the way:
//
//	root := ir.Keyed()
//	root = ir.Set(root, kpath.Field("a").Append(kpath.Index(0)), ir.FromString("x"))
//	// root is now {a: [x]}
package ir
