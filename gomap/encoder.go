package gomap

import (
	"github.com/signadot/urlform/debug"
	"github.com/signadot/urlform/ir"
	"github.com/signadot/urlform/ir/kpath"
)

// state is the tree shared by all containers of one encoding call.
type state struct {
	root *ir.Node
	cfg  *mapConfig
}

func (s *state) set(p *kpath.KPath, v *ir.Node) {
	if debug.Encode() {
		debug.Logf("set %q = %s\n", p.String(), v.Describe())
	}
	s.root = ir.Set(s.root, p, v)
}

// Encoder is the view of the tree at one path.  It hands out the
// containers used to write the value at that path.
type Encoder struct {
	st   *state
	path *kpath.KPath
}

// Encode maps v to a tree.  The tree starts as an empty keyed node, so an
// Encodable that writes nothing produces an empty keyed root.
func Encode(v Encodable, opts ...MapOption) (*ir.Node, error) {
	st := &state{root: ir.Keyed(), cfg: newMapConfig(opts...)}
	if err := v.EncodeForm(&Encoder{st: st}); err != nil {
		return nil, err
	}
	return st.root, nil
}

// EncodeValue maps v to a tree.  Only an Object (or an Encodable writing
// keyed entries) leaves the keyed root that form serialization requires; the
// serializer reports anything else.
func EncodeValue(v Value, opts ...MapOption) (*ir.Node, error) {
	st := &state{root: ir.Keyed(), cfg: newMapConfig(opts...)}
	enc := &Encoder{st: st}
	if err := enc.Single().Encode(v); err != nil {
		return nil, err
	}
	return st.root, nil
}

// Path returns the kpath of the value this encoder writes, "" at the root.
func (e *Encoder) Path() string {
	return e.path.String()
}

func (e *Encoder) Keyed() *KeyedContainer {
	return &KeyedContainer{st: e.st, path: e.path}
}

func (e *Encoder) Sequence() *SequenceContainer {
	return &SequenceContainer{st: e.st, path: e.path}
}

func (e *Encoder) Single() *SingleValueContainer {
	return &SingleValueContainer{st: e.st, path: e.path}
}
