package gomap

import (
	"errors"
	"net/netip"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type Address struct {
	Street string `form:"street"`
	Zip    string `form:"zip,omitempty"`
}

type Base struct {
	ID int `form:"id"`
}

type Person struct {
	Base
	Name    string    `form:"name"`
	Tags    []string  `form:"tags"`
	Home    *Address  `form:"home"`
	Work    *Address  `form:"work,omitempty"`
	Secret  string    `form:"-"`
	Born    time.Time `form:"born"`
	Raw     []byte
	private int
}

var timeEqual = cmp.Comparer(func(a, b Time) bool {
	return time.Time(a).Equal(time.Time(b))
})

func TestFromGoStruct(t *testing.T) {
	p := Person{
		Base:    Base{ID: 9},
		Name:    "ann",
		Tags:    []string{"a", "b"},
		Home:    &Address{Street: "main"},
		Secret:  "x",
		Born:    time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC),
		Raw:     []byte("z"),
		private: 3,
	}
	got, err := FromGo(p)
	if err != nil {
		t.Fatal(err)
	}
	want := Object{
		{"id", Int(9)},
		{"name", String("ann")},
		{"tags", Array{String("a"), String("b")}},
		{"home", Object{{"street", String("main")}}},
		{"born", Time(p.Born)},
		{"Raw", Bytes("z")},
	}
	if diff := cmp.Diff(want, got, timeEqual); diff != "" {
		t.Errorf("FromGo() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromGoMapSorted(t *testing.T) {
	got, err := FromGo(map[string]any{
		"b": true,
		"a": 1,
		"c": []any{2, 3.5, nil},
		"d": map[int]string{2: "two", 1: "one"},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := Object{
		{"a", Int(1)},
		{"b", Bool(true)},
		{"c", Array{Int(2), Float(3.5), Null{}}},
		{"d", Object{{"1", String("one")}, {"2", String("two")}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromGo() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromGoSpecial(t *testing.T) {
	addr := netip.MustParseAddr("10.0.0.1")
	got, err := FromGo(map[string]any{
		"addr": addr,
		"enc":  login{user: "x"},
		"val":  String("v"),
		"nil":  (*Address)(nil),
	})
	if err != nil {
		t.Fatal(err)
	}
	obj := got.(Object)
	if len(obj) != 4 {
		t.Fatalf("got %d members, want 4", len(obj))
	}
	if obj[0].Key != "addr" || obj[0].Value != String("10.0.0.1") {
		t.Errorf("addr = %#v", obj[0])
	}
	if _, ok := obj[1].Value.(encodable); !ok {
		t.Errorf("enc = %#v, want encodable", obj[1].Value)
	}
	if obj[2].Value != (Null{}) {
		t.Errorf("nil = %#v, want Null", obj[2].Value)
	}
	if obj[3].Value != String("v") {
		t.Errorf("val = %#v", obj[3].Value)
	}
}

type node struct {
	Name string `form:"name"`
	Next *node  `form:"next"`
}

func TestFromGoCycle(t *testing.T) {
	a := &node{Name: "a"}
	b := &node{Name: "b", Next: a}
	a.Next = b
	_, err := FromGo(a)
	if err == nil {
		t.Fatal("expected error for circular reference")
	}
	if !strings.Contains(err.Error(), "circular") {
		t.Errorf("error %q does not mention circular", err)
	}
	if !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("error %v is not ErrUnsupportedInput", err)
	}
}

func TestFromGoSharedPointerIsNotCycle(t *testing.T) {
	shared := &Address{Street: "s"}
	_, err := FromGo(struct {
		A *Address
		B *Address
	}{shared, shared})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFromGoUnsupported(t *testing.T) {
	tests := []struct {
		name string
		v    any
		path string
	}{
		{"chan", make(chan int), ""},
		{"func field", struct{ F func() }{F: func() {}}, "F"},
		{"complex in slice", []any{1, complex(1, 2)}, "[1]"},
		{"bool map key", map[bool]int{true: 1}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGo(tt.v)
			if !errors.Is(err, ErrUnsupportedInput) {
				t.Fatalf("FromGo() error = %v, want ErrUnsupportedInput", err)
			}
			var ee *EncodeError
			if !errors.As(err, &ee) {
				t.Fatalf("error %T is not *EncodeError", err)
			}
			if ee.Path != tt.path {
				t.Errorf("Path = %q, want %q", ee.Path, tt.path)
			}
		})
	}
}

func TestFromGoNil(t *testing.T) {
	for _, v := range []any{nil, (*int)(nil), []int(nil), map[string]int(nil)} {
		got, err := FromGo(v)
		if err != nil {
			t.Fatal(err)
		}
		if got != (Null{}) {
			t.Errorf("FromGo(%#v) = %#v, want Null", v, got)
		}
	}
}
