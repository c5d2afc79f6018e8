// Package gomap maps Go values to form trees (ir.Node).
//
// # Usage
//
// Types that want full control implement Encodable and drive the encoder
// through keyed, sequence and single value containers:
//
//	type Login struct {
//	    User     string
//	    Remember bool
//	}
//
//	func (l Login) EncodeForm(enc *gomap.Encoder) error {
//	    k := enc.Keyed()
//	    if err := k.String("user", l.User); err != nil {
//	        return err
//	    }
//	    return k.Bool("remember", l.Remember)
//	}
//
//	node, err := gomap.Encode(Login{User: "ann", Remember: true})
//
// Plain Go values (maps, slices, structs with `form` tags) are converted to a
// Value with FromGo and then encoded with EncodeValue.
//
// Each encoding call owns its tree; containers write into it by path, so a
// value written at "a[0].b" creates the sequence and keyed containers on the
// way.  Scalars are rendered to text using the bool, data, date and nil
// policies given as MapOptions.
//
// # Related Packages
//
//   - github.com/signadot/urlform/ir - the tree
//   - github.com/signadot/urlform/encode - tree to "key=value" text
//   - github.com/signadot/urlform/policy - encoding policies
package gomap
