package policy

import (
	"errors"
	"testing"
	"time"
)

func TestBoolStyle(t *testing.T) {
	tests := []struct {
		s    BoolStyle
		in   bool
		want string
	}{
		{BoolNumeric, true, "1"},
		{BoolNumeric, false, "0"},
		{BoolLiteral, true, "true"},
		{BoolLiteral, false, "false"},
	}
	for _, tt := range tests {
		if got := tt.s.EncodeBool(tt.in); got != tt.want {
			t.Errorf("%s.EncodeBool(%v) = %q, want %q", tt.s, tt.in, got, tt.want)
		}
	}
}

func TestDataStyle(t *testing.T) {
	got, ok, err := DataBase64.EncodeData([]byte("hi"))
	if err != nil || !ok || got != "aGk=" {
		t.Errorf("DataBase64.EncodeData() = %q, %v, %v", got, ok, err)
	}
	if _, ok, _ := DataDeferred.EncodeData([]byte("hi")); ok {
		t.Errorf("DataDeferred.EncodeData() should defer")
	}
	boom := errors.New("boom")
	f := DataFunc(func([]byte) (string, error) { return "", boom })
	if _, _, err := f.EncodeData(nil); !errors.Is(err, boom) {
		t.Errorf("DataFunc error = %v, want %v", err, boom)
	}
}

func TestDateStyle(t *testing.T) {
	at := time.Date(2024, 5, 6, 10, 0, 0, 500_000_000, time.FixedZone("x", 3600))
	tests := []struct {
		name string
		enc  DateEncoding
		want string
		ok   bool
	}{
		{"deferred", DateDeferred, "", false},
		{"seconds", DateSeconds, "1714986000.5", true},
		{"milliseconds", DateMilliseconds, "1714986000500", true},
		{"iso8601", DateISO8601, "2024-05-06T09:00:00Z", true},
		{"layout", DateLayout("2006-01-02"), "2024-05-06", true},
		{"func", DateFunc(func(t time.Time) (string, error) { return t.Month().String(), nil }), "May", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := tt.enc.EncodeDate(at)
			if err != nil {
				t.Fatal(err)
			}
			if ok != tt.ok || got != tt.want {
				t.Errorf("EncodeDate() = %q, %v, want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNilStyle(t *testing.T) {
	tests := []struct {
		enc  NilEncoding
		want string
		ok   bool
	}{
		{NilDropKey, "", false},
		{NilDropValue, "", true},
		{NilNull, "null", true},
		{NilFunc(func() (string, bool, error) { return "none", true, nil }), "none", true},
	}
	for _, tt := range tests {
		got, ok, err := tt.enc.EncodeNil()
		if err != nil {
			t.Fatal(err)
		}
		if ok != tt.ok || got != tt.want {
			t.Errorf("%v.EncodeNil() = %q, %v, want %q, %v", tt.enc, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyStyle(t *testing.T) {
	tests := []struct {
		s    KeyStyle
		in   string
		want string
	}{
		{KeyAsIs, "oneTwo", "oneTwo"},
		{KeySnakeCase, "oneTwo", "one_two"},
		{KeyKebabCase, "oneTwo", "one-two"},
		{KeyCapitalized, "oneTwo", "OneTwo"},
		{KeyUpperCase, "oneTwo", "ONETWO"},
		{KeyLowerCase, "oneTwo", "onetwo"},
		{KeySnakeCase, "parent[childName]", "parent[child_name]"},
	}
	for _, tt := range tests {
		got, err := tt.s.EncodeKey(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s.EncodeKey(%q) = %q, want %q", tt.s, tt.in, got, tt.want)
		}
	}
}

func TestKeyPathAndArray(t *testing.T) {
	if got := KeyPathBrackets.EncodeKeyPath("b"); got != "[b]" {
		t.Errorf("KeyPathBrackets = %q", got)
	}
	if got := KeyPathDots.EncodeKeyPath("b"); got != ".b" {
		t.Errorf("KeyPathDots = %q", got)
	}
	if got := ArrayBrackets.EncodeArrayKey("c", 3); got != "c[]" {
		t.Errorf("ArrayBrackets = %q", got)
	}
	if got := ArrayNoBrackets.EncodeArrayKey("c", 3); got != "c" {
		t.Errorf("ArrayNoBrackets = %q", got)
	}
	if got := ArrayIndexInBrackets.EncodeArrayKey("c", 3); got != "c[3]" {
		t.Errorf("ArrayIndexInBrackets = %q", got)
	}
	f := ArrayFunc(func(key string, i int) string { return key + "_" })
	if got := f.EncodeArrayKey("c", 0); got != "c_" {
		t.Errorf("ArrayFunc = %q", got)
	}
}

func TestSpaceStyle(t *testing.T) {
	if got := SpacePercentEscaped.EncodeSpaces("a b c"); got != "a%20b%20c" {
		t.Errorf("SpacePercentEscaped = %q", got)
	}
	if got := SpacePlusReplaced.EncodeSpaces("a b c"); got != "a+b+c" {
		t.Errorf("SpacePlusReplaced = %q", got)
	}
}

func TestCharSet(t *testing.T) {
	if got, want := DefaultQueryAllowed.String(), "-./0123456789?ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz~"; got != want {
		t.Errorf("DefaultQueryAllowed = %q, want %q", got, want)
	}
	for _, b := range []byte("&=[]+ %") {
		if DefaultQueryAllowed.Contains(b) {
			t.Errorf("DefaultQueryAllowed contains %q", b)
		}
	}
	if DefaultQueryAllowed.Contains(0xC3) {
		t.Errorf("non ASCII byte is a member")
	}
	u := NewCharSet("ab").Union(NewCharSet("bc"))
	if got := u.String(); got != "abc" {
		t.Errorf("Union = %q", got)
	}
	if got := u.Subtract(NewCharSet("b")).String(); got != "ac" {
		t.Errorf("Subtract = %q", got)
	}
	var cs CharSet
	if !cs.IsEmpty() {
		t.Errorf("zero CharSet not empty")
	}
	if err := cs.UnmarshalText([]byte("xyz")); err != nil {
		t.Fatal(err)
	}
	if !cs.Contains('y') || cs.Contains('a') {
		t.Errorf("UnmarshalText gave %q", cs)
	}
	if err := cs.UnmarshalText([]byte("é")); !errors.Is(err, ErrUnknown) {
		t.Errorf("UnmarshalText non ASCII error = %v", err)
	}
}

func TestParseStyles(t *testing.T) {
	if s, err := ParseArrayStyle("indexed"); err != nil || s != ArrayIndexInBrackets {
		t.Errorf("ParseArrayStyle(indexed) = %v, %v", s, err)
	}
	if s, err := ParseNilStyle("drop-value"); err != nil || s != NilDropValue {
		t.Errorf("ParseNilStyle(drop-value) = %v, %v", s, err)
	}
	if _, err := ParseDateStyle("fortnights"); !errors.Is(err, ErrUnknown) {
		t.Errorf("ParseDateStyle error = %v", err)
	}
	var k KeyStyle
	if err := k.UnmarshalText([]byte("snake")); err != nil || k != KeySnakeCase {
		t.Errorf("UnmarshalText(snake) = %v, %v", k, err)
	}
	for _, s := range []KeyStyle{KeyAsIs, KeySnakeCase, KeyKebabCase, KeyCapitalized, KeyUpperCase, KeyLowerCase} {
		d, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		back, err := ParseKeyStyle(string(d))
		if err != nil || back != s {
			t.Errorf("%v round tripped to %v, %v", s, back, err)
		}
	}
	if got := SpaceStyle(9).String(); got == "" {
		t.Errorf("String of unknown style is empty")
	}
}
