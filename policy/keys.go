package policy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/urlform/keycase"
)

// KeyEncoding transforms a full key, such as "parent[childName]", before it
// is escaped.
type KeyEncoding interface {
	EncodeKey(key string) (string, error)
}

type KeyStyle int

const (
	KeyAsIs KeyStyle = iota
	KeySnakeCase
	KeyKebabCase
	KeyCapitalized
	KeyUpperCase
	KeyLowerCase
)

func (s KeyStyle) EncodeKey(key string) (string, error) {
	switch s {
	case KeySnakeCase:
		return keycase.Snake(key), nil
	case KeyKebabCase:
		return keycase.Kebab(key), nil
	case KeyCapitalized:
		return keycase.Capitalize(key), nil
	case KeyUpperCase:
		return strings.ToUpper(key), nil
	case KeyLowerCase:
		return strings.ToLower(key), nil
	}
	return key, nil
}

func ParseKeyStyle(v string) (KeyStyle, error) {
	s, ok := map[string]KeyStyle{
		"as-is":       KeyAsIs,
		"asis":        KeyAsIs,
		"snake-case":  KeySnakeCase,
		"snake":       KeySnakeCase,
		"kebab-case":  KeyKebabCase,
		"kebab":       KeyKebabCase,
		"capitalized": KeyCapitalized,
		"upper-case":  KeyUpperCase,
		"upper":       KeyUpperCase,
		"lower-case":  KeyLowerCase,
		"lower":       KeyLowerCase,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: key encoding %q", ErrUnknown, v)
}

func (s KeyStyle) String() string { return styleString(s) }

func (s KeyStyle) MarshalText() ([]byte, error) {
	switch s {
	case KeyAsIs:
		return []byte("as-is"), nil
	case KeySnakeCase:
		return []byte("snake-case"), nil
	case KeyKebabCase:
		return []byte("kebab-case"), nil
	case KeyCapitalized:
		return []byte("capitalized"), nil
	case KeyUpperCase:
		return []byte("upper-case"), nil
	case KeyLowerCase:
		return []byte("lower-case"), nil
	}
	return nil, fmt.Errorf("<err: %d is not a key encoding>", s)
}

func (s *KeyStyle) UnmarshalText(d []byte) error {
	v, err := ParseKeyStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type KeyFunc func(key string) (string, error)

func (f KeyFunc) EncodeKey(key string) (string, error) {
	return f(key)
}

// KeyPathEncoding renders the suffix appended to a parent key for a
// sub-key of a nested keyed value.
type KeyPathEncoding interface {
	EncodeKeyPath(sub string) string
}

type KeyPathStyle int

const (
	// KeyPathBrackets renders "parent[sub]".
	KeyPathBrackets KeyPathStyle = iota
	// KeyPathDots renders "parent.sub".
	KeyPathDots
)

func (s KeyPathStyle) EncodeKeyPath(sub string) string {
	if s == KeyPathDots {
		return "." + sub
	}
	return "[" + sub + "]"
}

func ParseKeyPathStyle(v string) (KeyPathStyle, error) {
	s, ok := map[string]KeyPathStyle{
		"brackets": KeyPathBrackets,
		"b":        KeyPathBrackets,
		"dots":     KeyPathDots,
		"d":        KeyPathDots,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: key path encoding %q", ErrUnknown, v)
}

func (s KeyPathStyle) String() string { return styleString(s) }

func (s KeyPathStyle) MarshalText() ([]byte, error) {
	switch s {
	case KeyPathBrackets:
		return []byte("brackets"), nil
	case KeyPathDots:
		return []byte("dots"), nil
	}
	return nil, fmt.Errorf("<err: %d is not a key path encoding>", s)
}

func (s *KeyPathStyle) UnmarshalText(d []byte) error {
	v, err := ParseKeyPathStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type KeyPathFunc func(sub string) string

func (f KeyPathFunc) EncodeKeyPath(sub string) string {
	return f(sub)
}

// ArrayEncoding renders the key used for the element at index of a
// sequence stored under key.
type ArrayEncoding interface {
	EncodeArrayKey(key string, index int) string
}

type ArrayStyle int

const (
	// ArrayBrackets renders "key[]".
	ArrayBrackets ArrayStyle = iota
	// ArrayNoBrackets renders "key".
	ArrayNoBrackets
	// ArrayIndexInBrackets renders "key[index]".
	ArrayIndexInBrackets
)

func (s ArrayStyle) EncodeArrayKey(key string, index int) string {
	switch s {
	case ArrayNoBrackets:
		return key
	case ArrayIndexInBrackets:
		return key + "[" + strconv.Itoa(index) + "]"
	}
	return key + "[]"
}

func ParseArrayStyle(v string) (ArrayStyle, error) {
	s, ok := map[string]ArrayStyle{
		"brackets":          ArrayBrackets,
		"no-brackets":       ArrayNoBrackets,
		"nobrackets":        ArrayNoBrackets,
		"index-in-brackets": ArrayIndexInBrackets,
		"indexed":           ArrayIndexInBrackets,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: array encoding %q", ErrUnknown, v)
}

func (s ArrayStyle) String() string { return styleString(s) }

func (s ArrayStyle) MarshalText() ([]byte, error) {
	switch s {
	case ArrayBrackets:
		return []byte("brackets"), nil
	case ArrayNoBrackets:
		return []byte("no-brackets"), nil
	case ArrayIndexInBrackets:
		return []byte("index-in-brackets"), nil
	}
	return nil, fmt.Errorf("<err: %d is not an array encoding>", s)
}

func (s *ArrayStyle) UnmarshalText(d []byte) error {
	v, err := ParseArrayStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type ArrayFunc func(key string, index int) string

func (f ArrayFunc) EncodeArrayKey(key string, index int) string {
	return f(key, index)
}
