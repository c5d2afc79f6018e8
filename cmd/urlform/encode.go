package main

import (
	"bytes"
	"fmt"
	"io"
	"runtime"

	"github.com/scott-cotton/cli"
	"github.com/signadot/urlform"
	"golang.org/x/sync/errgroup"
)

func encodeFiles(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		cfg.Encode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	enc, err := cfg.Policy.encoder(cfg.MainConfig, cc.Out)
	if err != nil {
		return err
	}
	p, err := newPatcher(cfg.Policy)
	if err != nil {
		return err
	}
	outs, err := encodeAll(cc.In, args, cfg.inFormat(), p, enc, cfg.Jobs)
	if err != nil {
		return err
	}
	for _, out := range outs {
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// encodeAll encodes files concurrently, returning one newline terminated
// output per file in argument order.
func encodeAll(in io.Reader, files []string, f inputFormat, p *patcher, enc *urlform.Encoder, jobs int) ([][]byte, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	outs := make([][]byte, len(files))
	g := &errgroup.Group{}
	g.SetLimit(jobs)
	for i, file := range files {
		g.Go(func() error {
			v, err := readInput(in, file, f, p)
			if err != nil {
				return err
			}
			buf := &bytes.Buffer{}
			if err := enc.EncodeTo(v, buf); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			buf.WriteByte('\n')
			outs[i] = buf.Bytes()
			theLog.Debug("encoded", "file", file, "bytes", buf.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outs, nil
}
