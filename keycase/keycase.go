// Package keycase converts camelCase keys to separated lower case forms.
package keycase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Convert splits a camelCase key into words and joins them, lowercased,
// with sep.  A run of upper case letters is kept together as one word except
// for its last letter, which starts the next word when followed by a lower
// case letter:
//
//	Convert("myURLProperty", "_") == "my_url_property"
//	Convert("oneTwoThree", "-") == "one-two-three"
//
//	Convert("HTTPServer", "_") == "http_server"
//
// Digits and other characters are neither upper nor lower case and stay in
// the word they occur in.
func Convert(key, sep string) string {
	if key == "" {
		return key
	}
	rs := []rune(key)
	n := len(rs)
	var words [][]rune
	// searching from 0 lets a leading upper case run form its own word
	wordStart, searchStart := 0, 0
	for searchStart < n {
		u := indexFunc(rs, searchStart, unicode.IsUpper)
		if u == -1 {
			break
		}
		words = append(words, rs[wordStart:u])
		l := indexFunc(rs, u, unicode.IsLower)
		if l == -1 {
			wordStart = u
			break
		}
		if l == u+1 {
			wordStart = u
		} else {
			words = append(words, rs[u:l-1])
			wordStart = l - 1
		}
		searchStart = l + 1
	}
	words = append(words, rs[wordStart:])

	var buf strings.Builder
	first := true
	for _, w := range words {
		if len(w) == 0 {
			continue
		}
		if !first {
			buf.WriteString(sep)
		}
		first = false
		buf.WriteString(strings.ToLower(string(w)))
	}
	return buf.String()
}

func indexFunc(rs []rune, from int, f func(rune) bool) int {
	for i := from; i < len(rs); i++ {
		if f(rs[i]) {
			return i
		}
	}
	return -1
}

// Snake converts key to snake_case.
func Snake(key string) string {
	return Convert(key, "_")
}

// Kebab converts key to kebab-case.
func Kebab(key string) string {
	return Convert(key, "-")
}

// Capitalize upper cases the first character of key.
func Capitalize(key string) string {
	if key == "" {
		return key
	}
	r, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(r)) + key[size:]
}
