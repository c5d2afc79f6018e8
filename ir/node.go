package ir

import (
	"strconv"
	"strings"
)

type Node struct {
	Type   Type
	String string
	Fields []string
	Values []*Node
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromString(v string) *Node {
	return &Node{Type: ScalarType, String: v}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: SequenceType}
	res.Values = make([]*Node, len(ySlice))
	copy(res.Values, ySlice)
	return res
}

// FromKeyVals builds a keyed node.  A repeated key replaces the value of the
// earlier entry and keeps its position.
func FromKeyVals(kvs []KeyVal) *Node {
	res := Keyed()
	for _, kv := range kvs {
		res.put(kv.Key, kv.Val)
	}
	return res
}

// Keyed returns an empty keyed node.
func Keyed() *Node {
	return &Node{Type: KeyedType}
}

// Sequence returns an empty sequence node.
func Sequence() *Node {
	return &Node{Type: SequenceType}
}

func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) fieldIndex(field string) int {
	for i, f := range y.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

func (y *Node) put(field string, v *Node) {
	if i := y.fieldIndex(field); i != -1 {
		y.Values[i] = v
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Get returns the value under field in a keyed node, or nil.
func Get(y *Node, field string) *Node {
	if y == nil || y.Type != KeyedType {
		return nil
	}
	if i := y.fieldIndex(field); i != -1 {
		return y.Values[i]
	}
	return nil
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{Type: y.Type, String: y.String}
	if y.Fields != nil {
		res.Fields = make([]string, len(y.Fields))
		copy(res.Fields, y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree depth first, calling f before (isPost false) and
// after (isPost true) the children of each node.  Children are only visited
// when the pre call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Describe renders the node in a compact single line form for messages.
func (y *Node) Describe() string {
	var buf strings.Builder
	y.describe(&buf)
	return buf.String()
}

func (y *Node) describe(buf *strings.Builder) {
	if y == nil {
		buf.WriteString("<nil>")
		return
	}
	switch y.Type {
	case ScalarType:
		buf.WriteString(strconv.Quote(y.String))
	case SequenceType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			v.describe(buf)
		}
		buf.WriteByte(']')
	case KeyedType:
		buf.WriteByte('{')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(strconv.Quote(y.Fields[i]))
			buf.WriteString(": ")
			v.describe(buf)
		}
		buf.WriteByte('}')
	default:
		buf.WriteString(y.Type.String())
	}
}
