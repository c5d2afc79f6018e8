package ir

import (
	"fmt"

	"github.com/signadot/urlform/ir/kpath"
)

// GetKPath navigates the tree using a path string such as "a.b[0]".
func (y *Node) GetKPath(p string) (*Node, error) {
	kp, err := kpath.Parse(p)
	if err != nil {
		return nil, err
	}
	return y.GetPath(kp)
}

// GetPath navigates the tree using a parsed path.  A nil path returns y.
func (y *Node) GetPath(p *kpath.KPath) (*Node, error) {
	x := y
	for seg := p; seg != nil; seg = seg.Next {
		switch {
		case seg.Field != nil:
			if x.Type != KeyedType {
				return nil, fmt.Errorf("%w: %s is %s, not Keyed", ErrType, p, x.Type)
			}
			i := x.fieldIndex(*seg.Field)
			if i == -1 {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
			}
			x = x.Values[i]
		case seg.Index != nil:
			if x.Type != SequenceType {
				return nil, fmt.Errorf("%w: %s is %s, not Sequence", ErrType, p, x.Type)
			}
			if *seg.Index >= len(x.Values) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
			}
			x = x.Values[*seg.Index]
		}
	}
	return x, nil
}

// Leaves calls f with the path of every scalar below y in tree order.
func (y *Node) Leaves(f func(p *kpath.KPath, leaf *Node) error) error {
	return y.leaves(nil, f)
}

func (y *Node) leaves(at *kpath.KPath, f func(*kpath.KPath, *Node) error) error {
	switch y.Type {
	case ScalarType:
		return f(at, y)
	case SequenceType:
		for i, v := range y.Values {
			if err := v.leaves(at.Append(kpath.Index(i)), f); err != nil {
				return err
			}
		}
	case KeyedType:
		for i, v := range y.Values {
			if err := v.leaves(at.Append(kpath.Field(y.Fields[i])), f); err != nil {
				return err
			}
		}
	}
	return nil
}
