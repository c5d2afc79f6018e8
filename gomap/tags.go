package gomap

import (
	"reflect"
	"strings"
)

// fieldInfo holds what a struct field's `form` tag says about it.
//
//	Name string `form:"name"`           // key "name"
//	Note string `form:"note,omitempty"` // skipped when zero
//	Skip string `form:"-"`              // never encoded
type fieldInfo struct {
	Name      string
	Index     int
	Omit      bool
	OmitEmpty bool
	Inline    bool
}

func parseFieldTag(f reflect.StructField) fieldInfo {
	info := fieldInfo{Name: f.Name, Index: f.Index[0]}
	tag, hasTag := f.Tag.Lookup("form")
	if tag == "-" {
		info.Omit = true
		return info
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name != "" {
		info.Name = name
	}
	for opt := range strings.SplitSeq(opts, ",") {
		switch strings.TrimSpace(opt) {
		case "omitempty":
			info.OmitEmpty = true
		case "inline":
			info.Inline = true
		}
	}
	if f.Anonymous && (!hasTag || name == "") {
		t := f.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() == reflect.Struct {
			info.Inline = true
		}
	}
	if !f.IsExported() && !info.Inline {
		info.Omit = true
	}
	return info
}
