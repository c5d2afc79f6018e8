package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/BurntSushi/toml"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
	"github.com/tidwall/jsonc"
)

type inputFormat int

const (
	formatJSON inputFormat = iota
	formatYAML
	formatTOML
	formatCBOR
	formatJSONC
)

func parseInputFormat(v string) (inputFormat, error) {
	f, ok := map[string]inputFormat{
		"json":  formatJSON,
		"j":     formatJSON,
		"yaml":  formatYAML,
		"y":     formatYAML,
		"toml":  formatTOML,
		"t":     formatTOML,
		"cbor":  formatCBOR,
		"c":     formatCBOR,
		"jsonc": formatJSONC,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown input format %q", v)
}

func (f inputFormat) String() string {
	switch f {
	case formatJSON:
		return "json"
	case formatYAML:
		return "yaml"
	case formatTOML:
		return "toml"
	case formatCBOR:
		return "cbor"
	case formatJSONC:
		return "jsonc"
	}
	return fmt.Sprintf("<format %d>", int(f))
}

var cborDec cbor.DecMode

func init() {
	var err error
	cborDec, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

func decodeJSON(d []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// decode parses d as a document in format f.
func decode(f inputFormat, d []byte) (any, error) {
	switch f {
	case formatJSON:
		return decodeJSON(d)
	case formatJSONC:
		return decodeJSON(jsonc.ToJSON(d))
	case formatYAML:
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return v, nil
	case formatTOML:
		v := map[string]any{}
		if _, err := toml.Decode(string(d), &v); err != nil {
			return nil, err
		}
		return v, nil
	case formatCBOR:
		var v any
		if err := cborDec.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown input format %s", f)
}

// patcher rewrites decoded documents before encoding.
type patcher struct {
	ops   jsonpatch.Patch
	merge []byte
}

func newPatcher(p *PolicyConfig) (*patcher, error) {
	res := &patcher{}
	if p.Patch != "" {
		d, err := os.ReadFile(p.Patch)
		if err != nil {
			return nil, err
		}
		res.ops, err = jsonpatch.DecodePatch(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding patch %s: %w", p.Patch, err)
		}
	}
	if p.Merge != "" {
		d, err := os.ReadFile(p.Merge)
		if err != nil {
			return nil, err
		}
		if _, err := decodeJSON(d); err != nil {
			return nil, fmt.Errorf("error decoding merge patch %s: %w", p.Merge, err)
		}
		res.merge = d
	}
	return res, nil
}

func (p *patcher) apply(v any) (any, error) {
	if p == nil || (p.ops == nil && p.merge == nil) {
		return v, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error converting to json for patching: %w", err)
	}
	if p.ops != nil {
		d, err = p.ops.Apply(d)
		if err != nil {
			return nil, fmt.Errorf("error applying patch: %w", err)
		}
	}
	if p.merge != nil {
		d, err = jsonpatch.MergePatch(d, p.merge)
		if err != nil {
			return nil, fmt.Errorf("error applying merge patch: %w", err)
		}
	}
	return decodeJSON(d)
}

// readInput reads and decodes file, or cc's input for "-".
func readInput(in io.Reader, file string, f inputFormat, p *patcher) (any, error) {
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(in)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	v, err := decode(f, d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s as %s: %w", file, f, err)
	}
	return p.apply(v)
}
