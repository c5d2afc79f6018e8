package kpath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("kpath syntax error")

// KPath is a path of field and index segments.
type KPath struct {
	Field *string // keyed container field
	Index *int    // sequence index
	Next  *KPath  // next segment, nil at the leaf
}

// Field returns a single segment path addressing a field.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single segment path addressing a sequence element.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

func (p *KPath) IsField() bool {
	return p != nil && p.Field != nil
}

func (p *KPath) IsIndex() bool {
	return p != nil && p.Index != nil
}

// Len returns the number of segments in p.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Append returns a new path consisting of the segments of p followed by the
// segments of q.  Neither p nor q is modified, so a container may hand out
// extensions of its own path without aliasing.
func (p *KPath) Append(q *KPath) *KPath {
	var res, tail *KPath
	add := func(x *KPath) {
		c := x.segment()
		if tail == nil {
			res = c
		} else {
			tail.Next = c
		}
		tail = c
	}
	for x := p; x != nil; x = x.Next {
		add(x)
	}
	for x := q; x != nil; x = x.Next {
		add(x)
	}
	return res
}

// Last returns the final segment of p.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Equal reports whether p and q address the same position.
func (p *KPath) Equal(q *KPath) bool {
	for p != nil && q != nil {
		switch {
		case p.Field != nil:
			if q.Field == nil || *p.Field != *q.Field {
				return false
			}
		case p.Index != nil:
			if q.Index == nil || *p.Index != *q.Index {
				return false
			}
		default:
			if q.Field != nil || q.Index != nil {
				return false
			}
		}
		p, q = p.Next, q.Next
	}
	return p == nil && q == nil
}

// segment returns a copy of the first segment of p without its successors.
func (p *KPath) segment() *KPath {
	res := &KPath{}
	if p.Field != nil {
		f := *p.Field
		res.Field = &f
	}
	if p.Index != nil {
		i := *p.Index
		res.Index = &i
	}
	return res
}

// String returns the path in "a.b[0]" form.
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	var buf strings.Builder
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(quoteField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(&buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the string form of the first segment only.
func (p *KPath) SegmentString() string {
	switch {
	case p == nil:
		return ""
	case p.Field != nil:
		return quoteField(*p.Field)
	case p.Index != nil:
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	return ""
}

func needsQuote(field string) bool {
	if field == "" {
		return true
	}
	return strings.ContainsAny(field, ".[]' \t\n")
}

func quoteField(field string) string {
	if !needsQuote(field) {
		return field
	}
	return "'" + strings.ReplaceAll(field, "'", `\'`) + "'"
}

// Parse parses a path in the form produced by String.
//
// Examples:
//   - "" : the root (nil)
//   - "a.b.c" : three fields
//   - "a[0][1]" : a field then two indices
//   - "[3].b" : an index then a field
//   - "'a b'.c" : a quoted field then a field
func Parse(s string) (*KPath, error) {
	if s == "" {
		return nil, nil
	}
	var res, tail *KPath
	add := func(x *KPath) {
		if tail == nil {
			res = x
		} else {
			tail.Next = x
		}
		tail = x
	}
	i := 0
	for i < len(s) {
		switch s[i] {
		case '[':
			j := strings.IndexByte(s[i+1:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrSyntax, s)
			}
			digits := s[i+1 : i+1+j]
			n, err := strconv.Atoi(digits)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, digits, s)
			}
			add(Index(n))
			i += j + 2
		case '.':
			if tail == nil {
				return nil, fmt.Errorf("%w: leading '.' in %q", ErrSyntax, s)
			}
			field, n, err := parseField(s[i+1:])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, s)
			}
			add(Field(field))
			i += n + 1
		default:
			if tail != nil {
				return nil, fmt.Errorf("%w: expected '.' or '[' at offset %d in %q", ErrSyntax, i, s)
			}
			field, n, err := parseField(s[i:])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, s)
			}
			add(Field(field))
			i += n
		}
	}
	return res, nil
}

// parseField reads one field name from the start of frag, returning the
// name and the number of bytes consumed.
func parseField(frag string) (string, int, error) {
	if frag == "" {
		return "", 0, fmt.Errorf("%w: missing field", ErrSyntax)
	}
	if frag[0] != '\'' {
		n := strings.IndexAny(frag, ".[")
		if n == -1 {
			n = len(frag)
		}
		if n == 0 {
			return "", 0, fmt.Errorf("%w: missing field", ErrSyntax)
		}
		return frag[:n], n, nil
	}
	var buf strings.Builder
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if i+1 < len(frag) && frag[i+1] == '\'' {
				buf.WriteByte('\'')
				i++
				continue
			}
			buf.WriteByte(c)
		case '\'':
			return buf.String(), i + 1, nil
		default:
			buf.WriteByte(c)
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated quoted field", ErrSyntax)
}
