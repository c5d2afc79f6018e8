package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/urlform/ir"
)

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	enc, err := cfg.Policy.encoder(cfg.MainConfig, nil)
	if err != nil {
		return err
	}
	p, err := newPatcher(cfg.Policy)
	if err != nil {
		return err
	}
	for i, file := range args {
		v, err := readInput(cc.In, file, cfg.inFormat(), p)
		if err != nil {
			return err
		}
		node, err := enc.Tree(v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if cfg.At != "" {
			node, err = node.GetKPath(cfg.At)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
		}
		if i > 0 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		if err := writeTree(cc.Out, node); err != nil {
			return err
		}
	}
	return nil
}

func writeTree(w io.Writer, node *ir.Node) error {
	d, err := yaml.Marshal(yamlTree(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// yamlTree converts node to values yaml marshals in node order.
func yamlTree(node *ir.Node) any {
	switch node.Type {
	case ir.ScalarType:
		return node.String
	case ir.SequenceType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = yamlTree(v)
		}
		return res
	}
	res := make(yaml.MapSlice, len(node.Values))
	for i, v := range node.Values {
		res[i] = yaml.MapItem{Key: node.Fields[i], Value: yamlTree(v)}
	}
	return res
}
