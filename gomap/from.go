package gomap

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/signadot/urlform/ir/kpath"
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	encodableType = reflect.TypeOf((*Encodable)(nil)).Elem()
	valueType     = reflect.TypeOf((*Value)(nil)).Elem()
	marshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// FromGo converts a plain Go value to a Value.
//
//   - nil, nil pointers, nil maps and nil slices become Null
//   - Value and Encodable implementations are used as is
//   - time.Time becomes Time and []byte becomes Bytes
//   - encoding.TextMarshaler implementations become String
//   - strings, integers, floats and bools become the matching scalar
//   - maps with string or integer keys become Objects, sorted by key
//   - structs become Objects in field order, honoring `form` tags
//   - slices and arrays become Arrays
//
// Anything else (channels, funcs, complex numbers, other map keys) yields an
// *EncodeError wrapping ErrUnsupportedInput.  Pointer cycles are reported
// as errors as well.
func FromGo(v any) (Value, error) {
	return fromReflect(reflect.ValueOf(v), nil, map[uintptr]string{})
}

func fromReflect(val reflect.Value, at *kpath.KPath, visited map[uintptr]string) (Value, error) {
	if !val.IsValid() {
		return Null{}, nil
	}
	typ := val.Type()
	switch typ.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			return Null{}, nil
		}
		if v, ok := asSpecial(val); ok {
			return v, nil
		}
		return visit(val, at, visited, func() (Value, error) {
			return fromReflect(val.Elem(), at, visited)
		})
	case reflect.Interface:
		if val.IsNil() {
			return Null{}, nil
		}
		return fromReflect(val.Elem(), at, visited)
	}
	if v, ok := asSpecial(val); ok {
		return v, nil
	}
	// pointer receivers
	var ptr reflect.Value
	if val.CanAddr() {
		ptr = val.Addr()
	} else if val.CanInterface() && reflect.PointerTo(typ).Implements(encodableType) {
		ptr = reflect.New(typ)
		ptr.Elem().Set(val)
	}
	if ptr.IsValid() {
		if v, ok := asSpecial(ptr); ok {
			return v, nil
		}
	}
	if v, ok, err := marshalText(val, at); ok || err != nil {
		return v, err
	}
	if ptr.IsValid() {
		if v, ok, err := marshalText(ptr, at); ok || err != nil {
			return v, err
		}
	}

	switch typ.Kind() {
	case reflect.String:
		return String(val.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(val.Uint()), nil
	case reflect.Float32:
		return Float32(val.Float()), nil
	case reflect.Float64:
		return Float(val.Float()), nil
	case reflect.Bool:
		return Bool(val.Bool()), nil
	case reflect.Slice:
		if val.IsNil() {
			return Null{}, nil
		}
		if typ.Elem().Kind() == reflect.Uint8 {
			return Bytes(val.Bytes()), nil
		}
		return fromSlice(val, at, visited)
	case reflect.Array:
		return fromSlice(val, at, visited)
	case reflect.Map:
		if val.IsNil() {
			return Null{}, nil
		}
		return visit(val, at, visited, func() (Value, error) {
			return fromMap(val, at, visited)
		})
	case reflect.Struct:
		return fromStruct(val, at, visited)
	}
	return nil, &EncodeError{
		Path:    at.String(),
		Message: fmt.Sprintf("cannot encode %s", typ),
		Err:     ErrUnsupportedInput,
	}
}

// visit runs f with val's address marked as in progress, failing when the
// address is already being visited higher up.
func visit(val reflect.Value, at *kpath.KPath, visited map[uintptr]string, f func() (Value, error)) (Value, error) {
	ptr := val.Pointer()
	if prev, seen := visited[ptr]; seen {
		return nil, &EncodeError{
			Path:    at.String(),
			Message: fmt.Sprintf("circular reference detected: %q -> %q", prev, at.String()),
			Err:     ErrUnsupportedInput,
		}
	}
	visited[ptr] = at.String()
	defer delete(visited, ptr)
	return f()
}

// asSpecial recognizes the types handled ahead of reflection.
func asSpecial(val reflect.Value) (Value, bool) {
	if !val.CanInterface() {
		return nil, false
	}
	typ := val.Type()
	switch {
	case typ.Kind() != reflect.Pointer && typ.Implements(valueType):
		return val.Interface().(Value), true
	case typ.Implements(encodableType):
		return Of(val.Interface().(Encodable)), true
	case typ == timeType:
		return Time(val.Interface().(time.Time)), true
	}
	return nil, false
}

func marshalText(val reflect.Value, at *kpath.KPath) (Value, bool, error) {
	if !val.CanInterface() || !val.Type().Implements(marshalerType) {
		return nil, false, nil
	}
	text, err := val.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return nil, false, &EncodeError{Path: at.String(), Message: "MarshalText", Err: err}
	}
	return String(text), true, nil
}

func fromSlice(val reflect.Value, at *kpath.KPath, visited map[uintptr]string) (Value, error) {
	n := val.Len()
	res := make(Array, n)
	for i := range n {
		v, err := fromReflect(val.Index(i), at.Append(kpath.Index(i)), visited)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func fromMap(val reflect.Value, at *kpath.KPath, visited map[uintptr]string) (Value, error) {
	type entry struct {
		key string
		val reflect.Value
	}
	entries := make([]entry, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		k := iter.Key()
		var key string
		switch k.Kind() {
		case reflect.String:
			key = k.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			key = strconv.FormatInt(k.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			key = strconv.FormatUint(k.Uint(), 10)
		default:
			return nil, &EncodeError{
				Path:    at.String(),
				Message: fmt.Sprintf("cannot encode map key type %s", k.Type()),
				Err:     ErrUnsupportedInput,
			}
		}
		entries = append(entries, entry{key: key, val: iter.Value()})
	}
	slices.SortFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
	res := make(Object, 0, len(entries))
	for _, e := range entries {
		v, err := fromReflect(e.val, at.Append(kpath.Field(e.key)), visited)
		if err != nil {
			return nil, err
		}
		res = append(res, Member{Key: e.key, Value: v})
	}
	return res, nil
}

func fromStruct(val reflect.Value, at *kpath.KPath, visited map[uintptr]string) (Value, error) {
	res := Object{}
	if err := appendStruct(&res, val, at, visited); err != nil {
		return nil, err
	}
	return res, nil
}

func appendStruct(res *Object, val reflect.Value, at *kpath.KPath, visited map[uintptr]string) error {
	typ := val.Type()
	for i := range typ.NumField() {
		info := parseFieldTag(typ.Field(i))
		if info.Omit {
			continue
		}
		fv := val.Field(i)
		if info.OmitEmpty && fv.IsZero() {
			continue
		}
		if info.Inline {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if err := appendStruct(res, fv, at, visited); err != nil {
					return err
				}
				continue
			}
		}
		v, err := fromReflect(fv, at.Append(kpath.Field(info.Name)), visited)
		if err != nil {
			return err
		}
		*res = append(*res, Member{Key: info.Name, Value: v})
	}
	return nil
}
