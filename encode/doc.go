// Package encode serializes form trees (ir.Node) to
// application/x-www-form-urlencoded text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromString("1")},
//	    {Key: "c", Val: ir.FromSlice([]*ir.Node{ir.FromString("2"), ir.FromString("3")})},
//	})
//	s, err := encode.Serialize(node)
//	// s == "a=1&c%5B%5D=2&c%5B%5D=3"
//
//	// Encode with options
//	err = encode.Encode(node, os.Stdout,
//	    encode.EncodeArrays(policy.ArrayIndexInBrackets),
//	    encode.EncodeSpaces(policy.SpacePlusReplaced))
//
// The root must be keyed.  Nested keyed values extend their parent's key with
// the key path encoding ("a[b]") and sequence elements with the array
// encoding ("a[]").  The full key then passes through the key encoding and
// both key and value are percent escaped.  Empty containers produce no
// output.
//
// # Related Packages
//
//   - github.com/signadot/urlform/ir - the tree
//   - github.com/signadot/urlform/policy - encoding policies
//   - github.com/signadot/urlform/gomap - Go values to trees
package encode
