// Package urlform encodes Go values as application/x-www-form-urlencoded
// text.
//
// # Usage
//
//	s, err := urlform.MarshalString(map[string]any{
//	    "a": 1,
//	    "b": true,
//	    "c": []int{2, 3},
//	})
//	// s == "a=1&b=1&c%5B%5D=2&c%5B%5D=3"
//
//	// With policies
//	enc := urlform.New(
//	    urlform.WithArray(policy.ArrayIndexInBrackets),
//	    urlform.WithKey(policy.KeySnakeCase),
//	    urlform.WithSpace(policy.SpacePlusReplaced))
//	s, err = enc.EncodeString(v)
//
// Encoding happens in two steps: the value is mapped to a tree by package
// gomap and the tree is serialized by package encode.  Tree returns the
// intermediate tree.
//
// Policies can also be loaded from a TOML file with LoadConfig.
//
// # Related Packages
//
//   - github.com/signadot/urlform/gomap - values to trees
//   - github.com/signadot/urlform/encode - trees to text
//   - github.com/signadot/urlform/policy - encoding policies
//   - github.com/signadot/urlform/formhttp - request bodies and queries
package urlform
