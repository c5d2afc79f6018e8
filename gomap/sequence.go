package gomap

import (
	"github.com/signadot/urlform/ir"
	"github.com/signadot/urlform/ir/kpath"
)

// SequenceContainer appends elements to the sequence at its path.
//
// Each element claims the next index and reserves its slot in the tree with
// an empty keyed placeholder, so an element that ends up writing nothing
// (an empty object, a nil under a dropping policy) cannot shift the
// positions of later elements.  Empty placeholders serialize to nothing.
type SequenceContainer struct {
	st    *state
	path  *kpath.KPath
	count int
}

func (c *SequenceContainer) Path() string {
	return c.path.String()
}

// Count returns the number of elements claimed so far.
func (c *SequenceContainer) Count() int {
	return c.count
}

func (c *SequenceContainer) next() *kpath.KPath {
	p := c.path.Append(kpath.Index(c.count))
	c.count++
	c.st.set(p, ir.Keyed())
	return p
}

// Append writes v as the next element.
func (c *SequenceContainer) Append(v Value) error {
	switch v.(type) {
	case nil, Null:
		return c.AppendNil()
	}
	return (&SingleValueContainer{st: c.st, path: c.next()}).Encode(v)
}

// AppendNil appends according to the nil encoding.  A dropped nil claims
// no index.
func (c *SequenceContainer) AppendNil() error {
	s, ok, err := c.st.cfg.nils.EncodeNil()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return (&SingleValueContainer{st: c.st, path: c.next()}).encodeString(s)
}

func (c *SequenceContainer) NestedKeyed() *KeyedContainer {
	return &KeyedContainer{st: c.st, path: c.next()}
}

func (c *SequenceContainer) NestedSequence() *SequenceContainer {
	return &SequenceContainer{st: c.st, path: c.next()}
}

// Encoder returns an encoder for the next element.
func (c *SequenceContainer) Encoder() *Encoder {
	return &Encoder{st: c.st, path: c.next()}
}
