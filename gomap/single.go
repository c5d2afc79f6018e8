package gomap

import (
	"fmt"
	"strconv"
	"time"

	"github.com/signadot/urlform/ir"
	"github.com/signadot/urlform/ir/kpath"
)

// SingleValueContainer writes exactly one value at its path.  A second write
// fails with ErrDoubleWrite.
type SingleValueContainer struct {
	st      *state
	path    *kpath.KPath
	written bool
}

func (c *SingleValueContainer) Path() string {
	return c.path.String()
}

func (c *SingleValueContainer) claim() error {
	if c.written {
		return &EncodeError{Path: c.path.String(), Err: ErrDoubleWrite}
	}
	c.written = true
	return nil
}

func (c *SingleValueContainer) encodeString(s string) error {
	if err := c.claim(); err != nil {
		return err
	}
	c.st.set(c.path, ir.FromString(s))
	return nil
}

// EncodeNil writes according to the nil encoding.  When the policy drops
// the value nothing is written and the container stays unused.
func (c *SingleValueContainer) EncodeNil() error {
	if c.written {
		return &EncodeError{Path: c.path.String(), Err: ErrDoubleWrite}
	}
	s, ok, err := c.st.cfg.nils.EncodeNil()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return c.encodeString(s)
}

// Encode writes v.  Scalars become text using the configured policies;
// Objects, Arrays and Encodables are written through nested containers at
// the same path.
func (c *SingleValueContainer) Encode(v Value) error {
	if c.written {
		return &EncodeError{Path: c.path.String(), Err: ErrDoubleWrite}
	}
	cfg := c.st.cfg
	switch x := v.(type) {
	case nil, Null:
		return c.EncodeNil()
	case String:
		return c.encodeString(string(x))
	case Int:
		return c.encodeString(strconv.FormatInt(int64(x), 10))
	case Uint:
		return c.encodeString(strconv.FormatUint(uint64(x), 10))
	case Float:
		return c.encodeString(strconv.FormatFloat(float64(x), 'f', -1, 64))
	case Float32:
		return c.encodeString(strconv.FormatFloat(float64(x), 'f', -1, 32))
	case Bool:
		return c.encodeString(cfg.bools.EncodeBool(bool(x)))
	case Time:
		s, ok, err := cfg.dates.EncodeDate(time.Time(x))
		if err != nil {
			return err
		}
		if ok {
			return c.encodeString(s)
		}
		text, err := time.Time(x).MarshalText()
		if err != nil {
			return &EncodeError{Path: c.path.String(), Message: "date", Err: err}
		}
		return c.encodeString(string(text))
	case Bytes:
		s, ok, err := cfg.data.EncodeData(x)
		if err != nil {
			return err
		}
		if ok {
			return c.encodeString(s)
		}
		arr := make(Array, len(x))
		for i, b := range x {
			arr[i] = Uint(b)
		}
		return c.encodeNested(arr)
	case encodable:
		if x.e == nil {
			return c.EncodeNil()
		}
		return c.encodeNested(x)
	case Object, Array:
		return c.encodeNested(x)
	default:
		return &EncodeError{
			Path:    c.path.String(),
			Message: fmt.Sprintf("%T", v),
			Err:     ErrUnsupportedInput,
		}
	}
}

func (c *SingleValueContainer) encodeNested(v Value) error {
	if err := c.claim(); err != nil {
		return err
	}
	enc := &Encoder{st: c.st, path: c.path}
	switch x := v.(type) {
	case Object:
		k := enc.Keyed()
		for _, m := range x {
			if err := k.Encode(m.Key, m.Value); err != nil {
				return err
			}
		}
	case Array:
		s := enc.Sequence()
		for _, e := range x {
			if err := s.Append(e); err != nil {
				return err
			}
		}
	case encodable:
		return x.e.EncodeForm(enc)
	}
	return nil
}
