package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	enc, err := cfg.Policy.encoder(cfg.MainConfig, nil)
	if err != nil {
		return err
	}
	p, err := newPatcher(cfg.Policy)
	if err != nil {
		return err
	}
	var texts [2]string
	for i, file := range args {
		v, err := readInput(cc.In, file, cfg.inFormat(), p)
		if err != nil {
			return err
		}
		texts[i], err = enc.EncodeString(v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	if cfg.Reverse {
		texts[0], texts[1] = texts[1], texts[0]
	}
	differs, err := writeDiff(cc.Out, texts[0], texts[1], cfg.colors(cc.Out) != nil)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// writeDiff writes a line diff of the pairs of encodings a and b, and
// reports whether they differ.
func writeDiff(w io.Writer, a, b string, colors bool) (bool, error) {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(pairLines(a), pairLines(b))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	differs := false
	add, del := fmt.Sprint, fmt.Sprint
	if colors {
		add = color.New(color.FgGreen).Sprint
		del = color.New(color.FgRed).Sprint
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			switch d.Type {
			case diffpatch.DiffInsert:
				differs = true
				buf.WriteString(add("+ " + line))
			case diffpatch.DiffDelete:
				differs = true
				buf.WriteString(del("- " + line))
			default:
				buf.WriteString("  " + line)
			}
		}
	}
	if !differs {
		return false, nil
	}
	_, err := io.WriteString(w, buf.String())
	return true, err
}

func pairLines(s string) string {
	if s == "" {
		return ""
	}
	return strings.ReplaceAll(s, "&", "\n") + "\n"
}
