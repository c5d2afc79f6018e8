package gomap

import (
	"errors"
	"testing"
	"time"

	"github.com/signadot/urlform/policy"
)

type login struct {
	user     string
	remember bool
	tags     []string
}

func (l login) EncodeForm(enc *Encoder) error {
	k := enc.Keyed()
	if err := k.String("user", l.user); err != nil {
		return err
	}
	if err := k.Bool("remember", l.remember); err != nil {
		return err
	}
	s := k.NestedSequence("tags")
	for _, t := range l.tags {
		if err := s.Append(String(t)); err != nil {
			return err
		}
	}
	return nil
}

func TestEncodeEncodable(t *testing.T) {
	node, err := Encode(login{user: "ann", remember: true, tags: []string{"x", "y"}})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"user": "ann", "remember": "1", "tags": ["x", "y"]}`
	if got := node.Describe(); got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}

func TestEncodeValue(t *testing.T) {
	at := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		v    Value
		opts []MapOption
		want string
	}{
		{
			name: "scalars",
			v: Object{
				{"s", String("hi")},
				{"i", Int(-3)},
				{"u", Uint(7)},
				{"f", Float(1.5)},
				{"f32", Float32(0.1)},
				{"b", Bool(false)},
			},
			want: `{"s": "hi", "i": "-3", "u": "7", "f": "1.5", "f32": "0.1", "b": "0"}`,
		},
		{
			name: "literal bools",
			v:    Object{{"b", Bool(true)}},
			opts: []MapOption{MapBools(policy.BoolLiteral)},
			want: `{"b": "true"}`,
		},
		{
			name: "nested",
			v: Object{
				{"a", Object{{"b", Array{Int(1), Object{{"c", String("d")}}}}}},
			},
			want: `{"a": {"b": ["1", {"c": "d"}]}}`,
		},
		{
			name: "nil dropped by default",
			v:    Object{{"a", Null{}}, {"b", nil}, {"c", String("x")}},
			want: `{"c": "x"}`,
		},
		{
			name: "nil as empty value",
			v:    Object{{"a", Null{}}},
			opts: []MapOption{MapNils(policy.NilDropValue)},
			want: `{"a": ""}`,
		},
		{
			name: "nil as null",
			v:    Object{{"a", Null{}}},
			opts: []MapOption{MapNils(policy.NilNull)},
			want: `{"a": "null"}`,
		},
		{
			name: "dropped nil in array claims no index",
			v:    Object{{"a", Array{Int(1), Null{}, Int(2)}}},
			want: `{"a": ["1", "2"]}`,
		},
		{
			name: "deferred date",
			v:    Object{{"t", Time(at)}},
			want: `{"t": "2024-05-06T10:00:00Z"}`,
		},
		{
			name: "seconds date",
			v:    Object{{"t", Time(at)}},
			opts: []MapOption{MapDates(policy.DateSeconds)},
			want: `{"t": "1714989600"}`,
		},
		{
			name: "base64 data by default",
			v:    Object{{"d", Bytes("hi")}},
			want: `{"d": "aGk="}`,
		},
		{
			name: "deferred data",
			v:    Object{{"d", Bytes{1, 255}}},
			opts: []MapOption{MapData(policy.DataDeferred)},
			want: `{"d": ["1", "255"]}`,
		},
		{
			name: "empty object leaves placeholder in array",
			v:    Object{{"a", Array{Object{}, Object{{"x", Int(1)}}}}},
			want: `{"a": [{}, {"x": "1"}]}`,
		},
		{
			name: "encodable member",
			v:    Object{{"l", Of(login{user: "bo"})}},
			want: `{"l": {"user": "bo", "remember": "0"}}`,
		},
		{
			name: "null root",
			v:    Null{},
			want: `{}`,
		},
		{
			name: "scalar root replaces keyed root",
			v:    String("x"),
			want: `"x"`,
		},
		{
			name: "array root",
			v:    Array{Int(1)},
			want: `["1"]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := EncodeValue(tt.v, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if got := node.Describe(); got != tt.want {
				t.Errorf("EncodeValue() = %s, want %s", got, tt.want)
			}
		})
	}
}

type twice struct{}

func (twice) EncodeForm(enc *Encoder) error {
	s := enc.Single()
	if err := s.Encode(String("a")); err != nil {
		return err
	}
	return s.Encode(String("b"))
}

func TestSingleValueDoubleWrite(t *testing.T) {
	_, err := EncodeValue(Object{{"x", Of(twice{})}})
	if !errors.Is(err, ErrDoubleWrite) {
		t.Fatalf("error = %v, want ErrDoubleWrite", err)
	}
	var ee *EncodeError
	if !errors.As(err, &ee) {
		t.Fatalf("error %T is not *EncodeError", err)
	}
	if ee.Path != "x" {
		t.Errorf("Path = %q, want x", ee.Path)
	}
}

type failing struct{ err error }

func (f failing) EncodeForm(enc *Encoder) error {
	return f.err
}

func TestPolicyErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	_, err := EncodeValue(Object{{"d", Bytes("x")}}, MapData(policy.DataFunc(func([]byte) (string, error) {
		return "", boom
	})))
	if err != boom {
		t.Errorf("data policy error = %v, want %v", err, boom)
	}
	_, err = EncodeValue(Object{{"t", Time(time.Now())}}, MapDates(policy.DateFunc(func(time.Time) (string, error) {
		return "", boom
	})))
	if err != boom {
		t.Errorf("date policy error = %v, want %v", err, boom)
	}
	_, err = EncodeValue(Object{{"a", Array{Null{}}}}, MapNils(policy.NilFunc(func() (string, bool, error) {
		return "", false, boom
	})))
	if err != boom {
		t.Errorf("nil policy error = %v, want %v", err, boom)
	}
	_, err = Encode(failing{err: boom})
	if err != boom {
		t.Errorf("Encodable error = %v, want %v", err, boom)
	}
}

type paths struct {
	t *testing.T
}

func (p paths) EncodeForm(enc *Encoder) error {
	k := enc.Keyed()
	if got := k.Path(); got != "" {
		p.t.Errorf("root Path() = %q", got)
	}
	s := k.NestedSequence("a")
	inner := s.NestedKeyed()
	if got := inner.Path(); got != "a[0]" {
		p.t.Errorf("nested Path() = %q, want a[0]", got)
	}
	if got := s.Count(); got != 1 {
		p.t.Errorf("Count() = %d, want 1", got)
	}
	sub := inner.Encoder("b")
	if got := sub.Path(); got != "a[0].b" {
		p.t.Errorf("Encoder(b).Path() = %q, want a[0].b", got)
	}
	return sub.Single().Encode(Int(1))
}

func TestContainerPaths(t *testing.T) {
	node, err := Encode(paths{t: t})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := node.Describe(), `{"a": [{"b": "1"}]}`; got != want {
		t.Errorf("Encode() = %s, want %s", got, want)
	}
}

type unknownValue struct{ Value }

func TestUnsupportedValue(t *testing.T) {
	_, err := EncodeValue(Object{{"x", unknownValue{}}})
	if !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("error = %v, want ErrUnsupportedInput", err)
	}
}
