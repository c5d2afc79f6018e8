package ir

import "github.com/signadot/urlform/ir/kpath"

// Set writes value at path p below node and returns the resulting tree.
//
// Set takes ownership of node: the returned tree may share structure with it
// and node must not be used afterwards.  A nil path replaces the whole tree
// by value.  Along the path:
//
//   - a field segment coerces the current node to keyed, replacing it with
//     an empty keyed node if it is not already one, and replaces or appends
//     the entry for the field.
//   - an index segment coerces the current node to a sequence in the same
//     way.  An index within bounds replaces that element; any other index
//     appends.
//
// A position that does not exist yet and is not the leaf starts out as an
// empty keyed node and is then coerced by the next segment.
func Set(node *Node, p *kpath.KPath, value *Node) *Node {
	if p == nil {
		return value
	}
	switch {
	case p.Index != nil:
		if node == nil || node.Type != SequenceType {
			node = Sequence()
		}
		i := *p.Index
		if i >= 0 && i < len(node.Values) {
			node.Values[i] = Set(node.Values[i], p.Next, value)
			return node
		}
		node.Values = append(node.Values, Set(Keyed(), p.Next, value))
		return node
	default:
		field := ""
		if p.Field != nil {
			field = *p.Field
		}
		if node == nil || node.Type != KeyedType {
			node = Keyed()
		}
		if i := node.fieldIndex(field); i != -1 {
			node.Values[i] = Set(node.Values[i], p.Next, value)
			return node
		}
		node.Fields = append(node.Fields, field)
		node.Values = append(node.Values, Set(Keyed(), p.Next, value))
		return node
	}
}
