package urlform

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/urlform/encode"
	"github.com/signadot/urlform/gomap"
	"github.com/signadot/urlform/policy"
)

type address struct {
	Street string `form:"street"`
	Zip    string `form:"zip,omitempty"`
}

type user struct {
	FirstName string    `form:"firstName"`
	Admin     bool      `form:"admin"`
	Tags      []string  `form:"tags"`
	Home      address   `form:"home"`
	Note      *string   `form:"note"`
	Secret    string    `form:"-"`
	Joined    time.Time `form:"joined,omitempty"`
}

type point struct{ x, y int }

func (p point) EncodeForm(enc *gomap.Encoder) error {
	c := enc.Keyed()
	if err := c.Int("x", int64(p.x)); err != nil {
		return err
	}
	return c.Int("y", int64(p.y))
}

func TestMarshalString(t *testing.T) {
	got, err := MarshalString(map[string]any{
		"a": 1,
		"b": true,
		"c": []int{2, 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "a=1&b=1&c%5B%5D=2&c%5B%5D=3"
	if got != want {
		t.Errorf("MarshalString() = %q, want %q", got, want)
	}
}

func TestEncodeStruct(t *testing.T) {
	u := user{
		FirstName: "Ada Lovelace",
		Admin:     true,
		Tags:      []string{"x"},
		Home:      address{Street: "1 Main"},
		Secret:    "s",
	}
	tests := []struct {
		name string
		enc  *Encoder
		want string
	}{
		{
			name: "defaults",
			enc:  New(),
			want: "admin=1&firstName=Ada%20Lovelace&home%5Bstreet%5D=1%20Main&tags%5B%5D=x",
		},
		{
			name: "snake plus dots literal",
			enc: New(
				WithKey(policy.KeySnakeCase),
				WithSpace(policy.SpacePlusReplaced),
				WithKeyPath(policy.KeyPathDots),
				WithBool(policy.BoolLiteral)),
			want: "admin=true&first_name=Ada+Lovelace&home.street=1+Main&tags%5B%5D=x",
		},
		{
			name: "null nils",
			enc:  New(WithNil(policy.NilNull), WithArray(policy.ArrayNoBrackets)),
			want: "admin=1&firstName=Ada%20Lovelace&home%5Bstreet%5D=1%20Main&note=null&tags=x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.enc.EncodeString(u)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("EncodeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeEncodable(t *testing.T) {
	got, err := New().EncodeString(map[string]any{"p": point{1, 2}})
	if err != nil {
		t.Fatal(err)
	}
	want := "p%5Bx%5D=1&p%5By%5D=2"
	if got != want {
		t.Errorf("EncodeString() = %q, want %q", got, want)
	}
	got, err = New().EncodeString(point{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if want := "x=3&y=4"; got != want {
		t.Errorf("EncodeString() = %q, want %q", got, want)
	}
}

func TestEncodeDates(t *testing.T) {
	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v := map[string]any{"t": when}
	tests := []struct {
		opt  Option
		want string
	}{
		{WithDate(policy.DateDeferred), "t=2024-01-02T03%3A04%3A05Z"},
		{WithDate(policy.DateSeconds), "t=1704164645"},
		{WithDate(policy.DateLayout("2006-01-02")), "t=2024-01-02"},
	}
	for _, tt := range tests {
		got, err := New(tt.opt).EncodeString(v)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("EncodeString() = %q, want %q", got, tt.want)
		}
	}
}

func TestEncodeInvalidRoot(t *testing.T) {
	_, err := New().EncodeString("scalar")
	if !errors.Is(err, encode.ErrInvalidRoot) {
		t.Fatalf("EncodeString(scalar) error = %v, want ErrInvalidRoot", err)
	}
	_, err = New().EncodeString([]int{1})
	if !errors.Is(err, encode.ErrInvalidRoot) {
		t.Fatalf("EncodeString(slice) error = %v, want ErrInvalidRoot", err)
	}
}

func TestEncodeUnsupported(t *testing.T) {
	_, err := New().EncodeString(map[string]any{"f": func() {}})
	if !errors.Is(err, gomap.ErrUnsupportedInput) {
		t.Fatalf("EncodeString(func) error = %v, want ErrUnsupportedInput", err)
	}
}

func TestWithCopies(t *testing.T) {
	base := New()
	dots := base.With(WithKeyPath(policy.KeyPathDots))
	v := map[string]any{"a": map[string]any{"b": 1}}
	got, err := base.EncodeString(v)
	if err != nil {
		t.Fatal(err)
	}
	if want := "a%5Bb%5D=1"; got != want {
		t.Errorf("base.EncodeString() = %q, want %q", got, want)
	}
	got, err = dots.EncodeString(v)
	if err != nil {
		t.Fatal(err)
	}
	if want := "a.b=1"; got != want {
		t.Errorf("dots.EncodeString() = %q, want %q", got, want)
	}
}

func TestEncodeTo(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := New().EncodeTo(map[string]string{"k": "v w"}, buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "k=v%20w"; got != want {
		t.Errorf("EncodeTo() = %q, want %q", got, want)
	}
	d, err := Marshal(map[string]string{"k": "v"})
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "k=v" {
		t.Errorf("Marshal() = %q, want %q", d, "k=v")
	}
}

func TestConfig(t *testing.T) {
	cfg, err := ParseConfig(`
alphabetize = false
array = "indexed"
key = "kebab-case"
space = "plus"
allowed = "[]"
`)
	if err != nil {
		t.Fatal(err)
	}
	f := false
	want := &Config{Alphabetize: &f, Array: "indexed", Key: "kebab-case", Space: "plus", Allowed: "[]"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
	}
	enc, err := cfg.Encoder()
	if err != nil {
		t.Fatal(err)
	}
	got, err := enc.EncodeString(map[string]any{"someKey": []string{"a b", "c"}})
	if err != nil {
		t.Fatal(err)
	}
	if want := "some-key[0]=a+b&some-key[1]=c"; got != want {
		t.Errorf("EncodeString() = %q, want %q", got, want)
	}
}

func TestConfigDateLayoutWins(t *testing.T) {
	cfg := &Config{Date: "seconds", DateLayout: "2006"}
	enc, err := cfg.Encoder()
	if err != nil {
		t.Fatal(err)
	}
	got, err := enc.EncodeString(map[string]any{"t": time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatal(err)
	}
	if got != "t=2024" {
		t.Errorf("EncodeString() = %q, want %q", got, "t=2024")
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := (&Config{Array: "sideways"}).Options(); !errors.Is(err, policy.ErrUnknown) {
		t.Errorf("Options() error = %v, want ErrUnknown", err)
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "form.toml")
	if err := os.WriteFile(path, []byte("key = \"snake-case\"\ncolour = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrConfig) {
		t.Errorf("LoadConfig() error = %v, want ErrConfig", err)
	}
	if err := os.WriteFile(path, []byte("key = \"snake-case\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Key != "snake-case" {
		t.Errorf("LoadConfig().Key = %q, want snake-case", cfg.Key)
	}
}

func TestPairs(t *testing.T) {
	got, err := New(WithAlphabetize(false)).Pairs(map[string]any{"b": []string{"x y"}})
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]string{{"b%5B%5D", "x%20y"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertionOrderIndependent(t *testing.T) {
	a := gomap.Object{
		{Key: "b", Value: gomap.Array{gomap.Int(3), gomap.Int(2)}},
		{Key: "a", Value: gomap.Object{{Key: "y", Value: gomap.Bool(false)}, {Key: "x", Value: gomap.String("1")}}},
	}
	b := gomap.Object{
		{Key: "a", Value: gomap.Object{{Key: "x", Value: gomap.String("1")}, {Key: "y", Value: gomap.Bool(false)}}},
		{Key: "b", Value: gomap.Array{gomap.Int(2), gomap.Int(3)}},
	}
	enc := New()
	sa, err := enc.EncodeString(a)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := enc.EncodeString(b)
	if err != nil {
		t.Fatal(err)
	}
	if sa != sb {
		t.Errorf("encodings differ: %q vs %q", sa, sb)
	}
	if want := "a%5Bx%5D=1&a%5By%5D=0&b%5B%5D=2&b%5B%5D=3"; sa != want {
		t.Errorf("EncodeString() = %q, want %q", sa, want)
	}
}
