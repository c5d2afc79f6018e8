package gomap

import (
	"time"

	"github.com/signadot/urlform/ir/kpath"
)

// KeyedContainer writes entries of the keyed value at its path.
type KeyedContainer struct {
	st   *state
	path *kpath.KPath
}

func (c *KeyedContainer) Path() string {
	return c.path.String()
}

func (c *KeyedContainer) at(key string) *kpath.KPath {
	return c.path.Append(kpath.Field(key))
}

func (c *KeyedContainer) single(key string) *SingleValueContainer {
	return &SingleValueContainer{st: c.st, path: c.at(key)}
}

// Encode writes v under key.  A nil v is encoded as nil.
func (c *KeyedContainer) Encode(key string, v Value) error {
	return c.single(key).Encode(v)
}

// EncodeNil writes key according to the nil encoding, which may drop it.
func (c *KeyedContainer) EncodeNil(key string) error {
	return c.single(key).EncodeNil()
}

func (c *KeyedContainer) String(key, v string) error {
	return c.Encode(key, String(v))
}

func (c *KeyedContainer) Int(key string, v int64) error {
	return c.Encode(key, Int(v))
}

func (c *KeyedContainer) Uint(key string, v uint64) error {
	return c.Encode(key, Uint(v))
}

func (c *KeyedContainer) Float(key string, v float64) error {
	return c.Encode(key, Float(v))
}

func (c *KeyedContainer) Bool(key string, v bool) error {
	return c.Encode(key, Bool(v))
}

func (c *KeyedContainer) Time(key string, v time.Time) error {
	return c.Encode(key, Time(v))
}

func (c *KeyedContainer) Bytes(key string, v []byte) error {
	return c.Encode(key, Bytes(v))
}

func (c *KeyedContainer) NestedKeyed(key string) *KeyedContainer {
	return &KeyedContainer{st: c.st, path: c.at(key)}
}

func (c *KeyedContainer) NestedSequence(key string) *SequenceContainer {
	return &SequenceContainer{st: c.st, path: c.at(key)}
}

// Encoder returns an encoder for the value under key.
func (c *KeyedContainer) Encoder(key string) *Encoder {
	return &Encoder{st: c.st, path: c.at(key)}
}
