package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/segmentio/encoding/json"
	"github.com/signadot/urlform/ir"
)

var out io.Writer = os.Stderr

// Logf writes to stderr, rendering trees and JSON-like values readably.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = x.Describe()
		}
	}
	fmt.Fprintf(out, msg, args...)
}
