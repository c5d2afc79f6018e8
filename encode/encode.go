package encode

import (
	"cmp"
	"io"
	"slices"
	"strings"

	"github.com/signadot/urlform/debug"
	"github.com/signadot/urlform/ir"
	"github.com/signadot/urlform/policy"
)

type EncState struct {
	alphabetize bool
	arrays      policy.ArrayEncoding
	keys        policy.KeyEncoding
	keyPaths    policy.KeyPathEncoding
	spaces      policy.SpaceEncoding
	allowed     policy.CharSet

	Color func(ColorAttr, string) string
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{
		alphabetize: true,
		arrays:      policy.ArrayBrackets,
		keys:        policy.KeyAsIs,
		keyPaths:    policy.KeyPathBrackets,
		spaces:      policy.SpacePercentEscaped,
		allowed:     policy.DefaultQueryAllowed,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// pair is one escaped key and value.
type pair struct {
	key, value string
}

// segment is the output of one subtree: its pairs in order together with
// their joined text, which sorting compares.
type segment struct {
	text  string
	pairs []pair
}

// Serialize returns the form encoding of root.
func Serialize(root *ir.Node, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(root, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode writes the form encoding of root to w.
func Encode(root *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	seg, err := es.root(root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, es.render(seg))
	return err
}

// Pairs returns the escaped key/value pairs of root in output order.
func Pairs(root *ir.Node, opts ...EncodeOption) ([][2]string, error) {
	es := newEncState(opts...)
	seg, err := es.root(root)
	if err != nil {
		return nil, err
	}
	res := make([][2]string, len(seg.pairs))
	for i, p := range seg.pairs {
		res[i] = [2]string{p.key, p.value}
	}
	return res, nil
}

func (es *EncState) root(root *ir.Node) (segment, error) {
	if root == nil || root.Type != ir.KeyedType {
		return segment{}, &InvalidRootError{Received: root.Describe()}
	}
	segs := make([]segment, 0, len(root.Values))
	for i, v := range root.Values {
		seg, err := es.serialize(v, root.Fields[i])
		if err != nil {
			return segment{}, err
		}
		segs = append(segs, seg)
	}
	return es.join(segs), nil
}

// serialize renders node stored under the full key.
func (es *EncState) serialize(node *ir.Node, key string) (segment, error) {
	switch node.Type {
	case ir.ScalarType:
		k, err := es.keys.EncodeKey(key)
		if err != nil {
			return segment{}, err
		}
		p := pair{key: es.escape(k), value: es.escape(node.String)}
		return segment{text: p.key + "=" + p.value, pairs: []pair{p}}, nil
	case ir.SequenceType:
		segs := make([]segment, 0, len(node.Values))
		for i, v := range node.Values {
			seg, err := es.serialize(v, es.arrays.EncodeArrayKey(key, i))
			if err != nil {
				return segment{}, err
			}
			segs = append(segs, seg)
		}
		return es.join(segs), nil
	default:
		segs := make([]segment, 0, len(node.Values))
		for i, v := range node.Values {
			seg, err := es.serialize(v, key+es.keyPaths.EncodeKeyPath(node.Fields[i]))
			if err != nil {
				return segment{}, err
			}
			segs = append(segs, seg)
		}
		return es.join(segs), nil
	}
}

// join concatenates sibling segments, dropping empty ones and sorting the
// rest by text when alphabetizing.
func (es *EncState) join(segs []segment) segment {
	segs = slices.DeleteFunc(segs, func(s segment) bool { return len(s.pairs) == 0 })
	if es.alphabetize {
		slices.SortStableFunc(segs, func(a, b segment) int { return cmp.Compare(a.text, b.text) })
	}
	res := segment{}
	texts := make([]string, len(segs))
	for i, s := range segs {
		texts[i] = s.text
		res.pairs = append(res.pairs, s.pairs...)
	}
	res.text = strings.Join(texts, "&")
	if debug.Serialize() && len(segs) > 1 {
		debug.Logf("joined %d segments: %s\n", len(segs), res.text)
	}
	return res
}

func (es *EncState) render(seg segment) string {
	if es.Color == nil {
		return seg.text
	}
	buf := &strings.Builder{}
	for i, p := range seg.pairs {
		if i > 0 {
			buf.WriteString(es.Color(SepColor, "&"))
		}
		buf.WriteString(es.colorEscaped(FieldColor, p.key))
		buf.WriteString(es.Color(SepColor, "="))
		buf.WriteString(es.colorEscaped(ValueColor, p.value))
	}
	return buf.String()
}

// colorEscaped colors s with attr, except for its "%XX" escapes.
func (es *EncState) colorEscaped(attr ColorAttr, s string) string {
	buf := &strings.Builder{}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i+2 >= len(s) {
			continue
		}
		if start < i {
			buf.WriteString(es.Color(attr, s[start:i]))
		}
		buf.WriteString(es.Color(EscapeColor, s[i:i+3]))
		i += 2
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(es.Color(attr, s[start:]))
	}
	return buf.String()
}

const upperhex = "0123456789ABCDEF"

// escape percent encodes every byte outside the allowed set except spaces,
// which are then handed to the space encoding.
func (es *EncState) escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != ' ' && !es.allowed.Contains(c) {
			n++
		}
	}
	if n == 0 {
		return es.spaces.EncodeSpaces(s)
	}
	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || es.allowed.Contains(c) {
			buf = append(buf, c)
			continue
		}
		buf = append(buf, '%', upperhex[c>>4], upperhex[c&15])
	}
	return es.spaces.EncodeSpaces(string(buf))
}
