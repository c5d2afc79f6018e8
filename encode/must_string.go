package encode

import "github.com/signadot/urlform/ir"

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := Serialize(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
