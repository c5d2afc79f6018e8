package encode

import "github.com/signadot/urlform/policy"

type EncodeOption func(*EncState)

// EncodeAlphabetize sorts sibling entries by their encoded text.  It is on
// by default.
func EncodeAlphabetize(v bool) EncodeOption {
	return func(es *EncState) { es.alphabetize = v }
}
func EncodeArrays(a policy.ArrayEncoding) EncodeOption {
	return func(es *EncState) {
		if a != nil {
			es.arrays = a
		}
	}
}
func EncodeKeys(k policy.KeyEncoding) EncodeOption {
	return func(es *EncState) {
		if k != nil {
			es.keys = k
		}
	}
}
func EncodeKeyPaths(k policy.KeyPathEncoding) EncodeOption {
	return func(es *EncState) {
		if k != nil {
			es.keyPaths = k
		}
	}
}
func EncodeSpaces(s policy.SpaceEncoding) EncodeOption {
	return func(es *EncState) {
		if s != nil {
			es.spaces = s
		}
	}
}

// EncodeAllowed sets the bytes left unescaped.  The zero CharSet keeps the
// default, policy.DefaultQueryAllowed.
func EncodeAllowed(cs policy.CharSet) EncodeOption {
	return func(es *EncState) {
		if !cs.IsEmpty() {
			es.allowed = cs
		}
	}
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
