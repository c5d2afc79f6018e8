// Package script builds key and date policies from expr expressions.
//
//	keys, err := script.KeyEncoding(`"x_" + snake(key)`)
//	dates, err := script.DateEncoding(`string(unix)`)
//
// Key expressions see the key as `key` and may call snake, kebab,
// capitalize, upper and lower.  Date expressions see the time as `t`
// along with `unix`, `unixMilli` and `rfc3339`.  Both must produce a
// string.
package script

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/urlform/debug"
	"github.com/signadot/urlform/keycase"
	"github.com/signadot/urlform/policy"
)

var ErrScript = errors.New("script error")

func keyOpts() []expr.Option {
	return []expr.Option{
		expr.Env(map[string]any{"key": ""}),
		expr.AsKind(reflect.String),
		strFunc("snake", keycase.Snake),
		strFunc("kebab", keycase.Kebab),
		strFunc("capitalize", keycase.Capitalize),
		strFunc("upper", strings.ToUpper),
		strFunc("lower", strings.ToLower),
	}
}

func strFunc(name string, f func(string) string) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		return f(params[0].(string)), nil
	},
		new(func(string) string))
}

func dateEnv(t time.Time) map[string]any {
	return map[string]any{
		"t":         t,
		"unix":      t.Unix(),
		"unixMilli": t.UnixMilli(),
		"rfc3339":   t.UTC().Format(time.RFC3339),
	}
}

// KeyEncoding compiles src into a key policy.
func KeyEncoding(src string) (policy.KeyFunc, error) {
	prg, err := expr.Compile(src, keyOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: key expression %q: %w", ErrScript, src, err)
	}
	return func(key string) (string, error) {
		return run(prg, map[string]any{"key": key})
	}, nil
}

// DateEncoding compiles src into a date policy.
func DateEncoding(src string) (policy.DateFunc, error) {
	prg, err := expr.Compile(src,
		expr.Env(dateEnv(time.Time{})),
		expr.AsKind(reflect.String))
	if err != nil {
		return nil, fmt.Errorf("%w: date expression %q: %w", ErrScript, src, err)
	}
	return func(t time.Time) (string, error) {
		return run(prg, dateEnv(t))
	}, nil
}

func run(prg *vm.Program, env map[string]any) (string, error) {
	res, err := expr.Run(prg, env)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrScript, err)
	}
	s, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("%w: returned type %T", ErrScript, res)
	}
	if debug.Encode() {
		debug.Logf("script %q -> %q\n", prg.Source().String(), s)
	}
	return s, nil
}
