package policy

import (
	"fmt"
	"strings"
)

// SpaceEncoding rewrites the spaces left in an escaped string.
type SpaceEncoding interface {
	EncodeSpaces(s string) string
}

type SpaceStyle int

const (
	// SpacePercentEscaped renders spaces as "%20".
	SpacePercentEscaped SpaceStyle = iota
	// SpacePlusReplaced renders spaces as "+".
	SpacePlusReplaced
)

func (s SpaceStyle) EncodeSpaces(v string) string {
	if s == SpacePlusReplaced {
		return strings.ReplaceAll(v, " ", "+")
	}
	return strings.ReplaceAll(v, " ", "%20")
}

func ParseSpaceStyle(v string) (SpaceStyle, error) {
	s, ok := map[string]SpaceStyle{
		"percent-escaped": SpacePercentEscaped,
		"percent":         SpacePercentEscaped,
		"plus-replaced":   SpacePlusReplaced,
		"plus":            SpacePlusReplaced,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: space encoding %q", ErrUnknown, v)
}

func (s SpaceStyle) String() string { return styleString(s) }

func (s SpaceStyle) MarshalText() ([]byte, error) {
	switch s {
	case SpacePercentEscaped:
		return []byte("percent-escaped"), nil
	case SpacePlusReplaced:
		return []byte("plus-replaced"), nil
	}
	return nil, fmt.Errorf("<err: %d is not a space encoding>", s)
}

func (s *SpaceStyle) UnmarshalText(d []byte) error {
	v, err := ParseSpaceStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// CharSet is a set of ASCII bytes.  Bytes outside ASCII are never members,
// so they are always percent escaped.
type CharSet struct {
	bits [2]uint64
}

var (
	Alphanumerics = NewCharSet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

	// URLQueryAllowed holds the bytes permitted unescaped in a URL query.
	URLQueryAllowed = Alphanumerics.With("-._~!$&'()*+,;=:@/?")

	// DefaultQueryAllowed is URLQueryAllowed without the general and sub
	// delimiters, leaving letters, digits and "-._~/?".
	DefaultQueryAllowed = URLQueryAllowed.Subtract(NewCharSet(":#[]@!$&'()*+,;="))
)

func NewCharSet(chars string) CharSet {
	return CharSet{}.With(chars)
}

// With returns c plus the ASCII bytes of chars.
func (c CharSet) With(chars string) CharSet {
	for i := 0; i < len(chars); i++ {
		b := chars[i]
		if b < 128 {
			c.bits[b>>6] |= 1 << (b & 63)
		}
	}
	return c
}

func (c CharSet) Contains(b byte) bool {
	if b >= 128 {
		return false
	}
	return c.bits[b>>6]&(1<<(b&63)) != 0
}

func (c CharSet) Union(o CharSet) CharSet {
	return CharSet{bits: [2]uint64{c.bits[0] | o.bits[0], c.bits[1] | o.bits[1]}}
}

func (c CharSet) Subtract(o CharSet) CharSet {
	return CharSet{bits: [2]uint64{c.bits[0] &^ o.bits[0], c.bits[1] &^ o.bits[1]}}
}

func (c CharSet) IsEmpty() bool {
	return c.bits[0] == 0 && c.bits[1] == 0
}

// String lists the members in byte order.
func (c CharSet) String() string {
	var buf strings.Builder
	for b := 0; b < 128; b++ {
		if c.Contains(byte(b)) {
			buf.WriteByte(byte(b))
		}
	}
	return buf.String()
}

func (c CharSet) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *CharSet) UnmarshalText(d []byte) error {
	for _, b := range d {
		if b >= 128 {
			return fmt.Errorf("%w: non ASCII byte %#x in character set", ErrUnknown, b)
		}
	}
	*c = NewCharSet(string(d))
	return nil
}
