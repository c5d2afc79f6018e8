package ir

import "fmt"

type Type int

const (
	ScalarType Type = iota
	SequenceType
	KeyedType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType:   "Scalar",
		SequenceType: "Sequence",
		KeyedType:    "Keyed",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Scalar":   ScalarType,
		"Sequence": SequenceType,
		"Keyed":    KeyedType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		SequenceType,
		KeyedType,
	}
}

func (t Type) IsLeaf() bool {
	return t == ScalarType
}
