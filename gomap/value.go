package gomap

import "time"

// Value is one of the closed set of values the encoder accepts: Null,
// String, Int, Uint, Float, Float32, Bool, Time, Bytes, Object, Array, or
// a value returned by Of.
type Value interface {
	isValue()
}

type (
	Null    struct{}
	String  string
	Int     int64
	Uint    uint64
	Float   float64
	Float32 float32
	Bool    bool
	Time    time.Time
	Bytes   []byte
	// Array is a sequence of values.
	Array []Value
	// Object is an ordered list of members.
	Object []Member
)

type Member struct {
	Key   string
	Value Value
}

func (Null) isValue()    {}
func (String) isValue()  {}
func (Int) isValue()     {}
func (Uint) isValue()    {}
func (Float) isValue()   {}
func (Float32) isValue() {}
func (Bool) isValue()    {}
func (Time) isValue()    {}
func (Bytes) isValue()   {}
func (Array) isValue()   {}
func (Object) isValue()  {}

// Encodable is implemented by types that encode themselves.
type Encodable interface {
	EncodeForm(enc *Encoder) error
}

type encodable struct {
	e Encodable
}

func (encodable) isValue() {}

// Of wraps an Encodable as a Value so it can be nested in Objects and
// Arrays or passed to container methods.
func Of(e Encodable) Value {
	return encodable{e: e}
}
