package urlform

import (
	"io"

	"github.com/signadot/urlform/encode"
	"github.com/signadot/urlform/gomap"
	"github.com/signadot/urlform/ir"
	"github.com/signadot/urlform/policy"
)

// Encoder holds a set of encoding policies.  The zero value is not usable;
// use New.
type Encoder struct {
	alphabetize bool
	arrays      policy.ArrayEncoding
	bools       policy.BoolEncoding
	data        policy.DataEncoding
	dates       policy.DateEncoding
	keys        policy.KeyEncoding
	keyPaths    policy.KeyPathEncoding
	nils        policy.NilEncoding
	spaces      policy.SpaceEncoding
	allowed     policy.CharSet
	colors      *encode.Colors
}

type Option func(*Encoder)

// New returns an Encoder with the default policies: sorted output,
// "key[]" arrays, "1"/"0" bools, base64 data, deferred dates, keys as
// is, "[sub]" key paths, dropped nils, "%20" spaces and
// policy.DefaultQueryAllowed.
func New(opts ...Option) *Encoder {
	e := &Encoder{
		alphabetize: true,
		arrays:      policy.ArrayBrackets,
		bools:       policy.BoolNumeric,
		data:        policy.DataBase64,
		dates:       policy.DateDeferred,
		keys:        policy.KeyAsIs,
		keyPaths:    policy.KeyPathBrackets,
		nils:        policy.NilDropKey,
		spaces:      policy.SpacePercentEscaped,
		allowed:     policy.DefaultQueryAllowed,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// With returns a copy of e with opts applied.
func (e *Encoder) With(opts ...Option) *Encoder {
	c := *e
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

func WithAlphabetize(v bool) Option {
	return func(e *Encoder) { e.alphabetize = v }
}
func WithArray(a policy.ArrayEncoding) Option {
	return func(e *Encoder) { e.arrays = a }
}
func WithBool(b policy.BoolEncoding) Option {
	return func(e *Encoder) { e.bools = b }
}
func WithData(d policy.DataEncoding) Option {
	return func(e *Encoder) { e.data = d }
}
func WithDate(d policy.DateEncoding) Option {
	return func(e *Encoder) { e.dates = d }
}
func WithKey(k policy.KeyEncoding) Option {
	return func(e *Encoder) { e.keys = k }
}
func WithKeyPath(k policy.KeyPathEncoding) Option {
	return func(e *Encoder) { e.keyPaths = k }
}
func WithNil(n policy.NilEncoding) Option {
	return func(e *Encoder) { e.nils = n }
}
func WithSpace(s policy.SpaceEncoding) Option {
	return func(e *Encoder) { e.spaces = s }
}
func WithAllowed(cs policy.CharSet) Option {
	return func(e *Encoder) { e.allowed = cs }
}

// WithColors colors the output of Encode and EncodeTo, for terminals.
func WithColors(c *encode.Colors) Option {
	return func(e *Encoder) { e.colors = c }
}

func (e *Encoder) mapOptions() []gomap.MapOption {
	return []gomap.MapOption{
		gomap.MapBools(e.bools),
		gomap.MapData(e.data),
		gomap.MapDates(e.dates),
		gomap.MapNils(e.nils),
	}
}

func (e *Encoder) encodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeAlphabetize(e.alphabetize),
		encode.EncodeArrays(e.arrays),
		encode.EncodeKeys(e.keys),
		encode.EncodeKeyPaths(e.keyPaths),
		encode.EncodeSpaces(e.spaces),
		encode.EncodeAllowed(e.allowed),
	}
}

// Tree maps v to its intermediate tree.  v may be a gomap.Encodable, a
// gomap.Value, or any Go value gomap.FromGo accepts.
func (e *Encoder) Tree(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x, nil
	case gomap.Encodable:
		return gomap.Encode(x, e.mapOptions()...)
	case gomap.Value:
		return gomap.EncodeValue(x, e.mapOptions()...)
	}
	val, err := gomap.FromGo(v)
	if err != nil {
		return nil, err
	}
	return gomap.EncodeValue(val, e.mapOptions()...)
}

// EncodeString returns the form encoding of v.
func (e *Encoder) EncodeString(v any) (string, error) {
	node, err := e.Tree(v)
	if err != nil {
		return "", err
	}
	return encode.Serialize(node, e.encodeOptions()...)
}

// Encode returns the form encoding of v as bytes, the way it is sent as
// a request body.
func (e *Encoder) Encode(v any) ([]byte, error) {
	s, err := e.EncodeString(v)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Pairs returns the escaped key/value pairs of the encoding of v, in
// output order.
func (e *Encoder) Pairs(v any) ([][2]string, error) {
	node, err := e.Tree(v)
	if err != nil {
		return nil, err
	}
	return encode.Pairs(node, e.encodeOptions()...)
}

// EncodeTo writes the form encoding of v to w, in color if the encoder
// was configured with WithColors.
func (e *Encoder) EncodeTo(v any, w io.Writer) error {
	node, err := e.Tree(v)
	if err != nil {
		return err
	}
	opts := e.encodeOptions()
	if e.colors != nil {
		opts = append(opts, encode.EncodeColors(e.colors))
	}
	return encode.Encode(node, w, opts...)
}

var std = New()

// Marshal encodes v with the default policies.
func Marshal(v any) ([]byte, error) {
	return std.Encode(v)
}

// MarshalString encodes v with the default policies.
func MarshalString(v any) (string, error) {
	return std.EncodeString(v)
}
