package policy

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

type BoolEncoding interface {
	EncodeBool(b bool) string
}

type BoolStyle int

const (
	// BoolNumeric renders true as "1" and false as "0".
	BoolNumeric BoolStyle = iota
	// BoolLiteral renders "true" and "false".
	BoolLiteral
)

func (s BoolStyle) EncodeBool(b bool) string {
	switch s {
	case BoolLiteral:
		return strconv.FormatBool(b)
	default:
		if b {
			return "1"
		}
		return "0"
	}
}

func ParseBoolStyle(v string) (BoolStyle, error) {
	s, ok := map[string]BoolStyle{
		"numeric": BoolNumeric,
		"number":  BoolNumeric,
		"literal": BoolLiteral,
		"text":    BoolLiteral,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: bool encoding %q", ErrUnknown, v)
}

func (s BoolStyle) String() string { return styleString(s) }

func (s BoolStyle) MarshalText() ([]byte, error) {
	switch s {
	case BoolNumeric:
		return []byte("numeric"), nil
	case BoolLiteral:
		return []byte("literal"), nil
	}
	return nil, fmt.Errorf("<err: %d is not a bool encoding>", s)
}

func (s *BoolStyle) UnmarshalText(d []byte) error {
	v, err := ParseBoolStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DataEncoding renders binary data.  A false ok selects the deferred
// rendering, a sequence of the byte values.
type DataEncoding interface {
	EncodeData(d []byte) (string, bool, error)
}

type DataStyle int

const (
	DataDeferred DataStyle = iota
	DataBase64
)

func (s DataStyle) EncodeData(d []byte) (string, bool, error) {
	if s == DataBase64 {
		return base64.StdEncoding.EncodeToString(d), true, nil
	}
	return "", false, nil
}

func ParseDataStyle(v string) (DataStyle, error) {
	s, ok := map[string]DataStyle{
		"deferred": DataDeferred,
		"bytes":    DataDeferred,
		"base64":   DataBase64,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: data encoding %q", ErrUnknown, v)
}

func (s DataStyle) String() string { return styleString(s) }

func (s DataStyle) MarshalText() ([]byte, error) {
	switch s {
	case DataDeferred:
		return []byte("deferred"), nil
	case DataBase64:
		return []byte("base64"), nil
	}
	return nil, fmt.Errorf("<err: %d is not a data encoding>", s)
}

func (s *DataStyle) UnmarshalText(d []byte) error {
	v, err := ParseDataStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DataFunc is a caller supplied data encoding.  It always produces a string.
type DataFunc func(d []byte) (string, error)

func (f DataFunc) EncodeData(d []byte) (string, bool, error) {
	s, err := f(d)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// DateEncoding renders time values.  A false ok selects the deferred
// rendering, the time's own text form (RFC 3339 with nanoseconds).
type DateEncoding interface {
	EncodeDate(t time.Time) (string, bool, error)
}

type DateStyle int

const (
	DateDeferred DateStyle = iota
	// DateSeconds renders seconds since the unix epoch, with a fraction
	// when the time is not on a second boundary.
	DateSeconds
	// DateMilliseconds renders milliseconds since the unix epoch.
	DateMilliseconds
	// DateISO8601 renders UTC time as "2006-01-02T15:04:05Z".
	DateISO8601
)

func (s DateStyle) EncodeDate(t time.Time) (string, bool, error) {
	switch s {
	case DateSeconds:
		secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
		return strconv.FormatFloat(secs, 'f', -1, 64), true, nil
	case DateMilliseconds:
		ms := float64(t.Unix())*1e3 + float64(t.Nanosecond())/1e6
		return strconv.FormatFloat(ms, 'f', -1, 64), true, nil
	case DateISO8601:
		return t.UTC().Format(time.RFC3339), true, nil
	}
	return "", false, nil
}

func ParseDateStyle(v string) (DateStyle, error) {
	s, ok := map[string]DateStyle{
		"deferred":     DateDeferred,
		"seconds":      DateSeconds,
		"s":            DateSeconds,
		"milliseconds": DateMilliseconds,
		"ms":           DateMilliseconds,
		"iso8601":      DateISO8601,
		"iso":          DateISO8601,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: date encoding %q", ErrUnknown, v)
}

func (s DateStyle) String() string { return styleString(s) }

func (s DateStyle) MarshalText() ([]byte, error) {
	switch s {
	case DateDeferred:
		return []byte("deferred"), nil
	case DateSeconds:
		return []byte("seconds"), nil
	case DateMilliseconds:
		return []byte("milliseconds"), nil
	case DateISO8601:
		return []byte("iso8601"), nil
	}
	return nil, fmt.Errorf("<err: %d is not a date encoding>", s)
}

func (s *DateStyle) UnmarshalText(d []byte) error {
	v, err := ParseDateStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DateLayout formats times with a time.Format layout.
type DateLayout string

func (l DateLayout) EncodeDate(t time.Time) (string, bool, error) {
	return t.Format(string(l)), true, nil
}

// DateFunc is a caller supplied date encoding.  It always produces a string.
type DateFunc func(t time.Time) (string, error)

func (f DateFunc) EncodeDate(t time.Time) (string, bool, error) {
	s, err := f(t)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// NilEncoding renders absent values.  A false ok drops the entry altogether.
type NilEncoding interface {
	EncodeNil() (string, bool, error)
}

type NilStyle int

const (
	// NilDropKey omits the entry.
	NilDropKey NilStyle = iota
	// NilDropValue keeps the key with an empty value, "key=".
	NilDropValue
	// NilNull renders "key=null".
	NilNull
)

func (s NilStyle) EncodeNil() (string, bool, error) {
	switch s {
	case NilDropValue:
		return "", true, nil
	case NilNull:
		return "null", true, nil
	}
	return "", false, nil
}

func ParseNilStyle(v string) (NilStyle, error) {
	s, ok := map[string]NilStyle{
		"drop-key":   NilDropKey,
		"dropkey":    NilDropKey,
		"drop-value": NilDropValue,
		"dropvalue":  NilDropValue,
		"null":       NilNull,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: nil encoding %q", ErrUnknown, v)
}

func (s NilStyle) String() string { return styleString(s) }

func (s NilStyle) MarshalText() ([]byte, error) {
	switch s {
	case NilDropKey:
		return []byte("drop-key"), nil
	case NilDropValue:
		return []byte("drop-value"), nil
	case NilNull:
		return []byte("null"), nil
	}
	return nil, fmt.Errorf("<err: %d is not a nil encoding>", s)
}

func (s *NilStyle) UnmarshalText(d []byte) error {
	v, err := ParseNilStyle(string(d))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// NilFunc is a caller supplied nil encoding.  Returning ok false drops the
// entry.
type NilFunc func() (string, bool, error)

func (f NilFunc) EncodeNil() (string, bool, error) {
	return f()
}

func styleString(m interface{ MarshalText() ([]byte, error) }) string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}
