package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/segmentio/encoding/json"
	"github.com/signadot/urlform"
	"go.lsp.dev/jsonrpc2"
)

const (
	methodEncode = "urlform/encode"
	methodPairs  = "urlform/pairs"
)

type encodeParams struct {
	Value  any             `json:"value"`
	Config *urlform.Config `json:"config,omitempty"`
}

type encodeResult struct {
	Query string `json:"query"`
}

type pairsResult struct {
	Pairs [][2]string `json:"pairs"`
}

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		cfg.Serve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: serve takes no args, got %v", cli.ErrUsage, args)
	}
	ctx := context.Background()
	var in io.Reader = os.Stdin
	if cc.In != nil {
		in = cc.In
	}
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  in,
		write: cc.Out,
	})
	s := &server{base: cfg.Config}
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, s.handle)
	theLog.Info("serving", "methods", []string{methodEncode, methodPairs})
	<-conn.Done()
	if err := conn.Err(); err != nil && err != io.EOF {
		return err
	}
	return nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

type server struct {
	base *urlform.Config
}

func (s *server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case methodEncode, methodPairs:
	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
	params := &encodeParams{}
	dec := json.NewDecoder(bytes.NewReader(req.Params()))
	dec.UseNumber()
	if err := dec.Decode(params); err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %w", jsonrpc2.ErrInvalidParams, err))
	}
	enc, err := s.encoder(params.Config)
	if err != nil {
		return reply(ctx, nil, fmt.Errorf("%w: %w", jsonrpc2.ErrInvalidParams, err))
	}
	theLog.Info("request", "method", req.Method())
	if req.Method() == methodPairs {
		pairs, err := enc.Pairs(params.Value)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, &pairsResult{Pairs: pairs}, nil)
	}
	q, err := enc.EncodeString(params.Value)
	if err != nil {
		return reply(ctx, nil, err)
	}
	return reply(ctx, &encodeResult{Query: q}, nil)
}

// encoder applies the non-empty fields of c over the server's config.
func (s *server) encoder(c *urlform.Config) (*urlform.Encoder, error) {
	merged := &urlform.Config{}
	if s.base != nil {
		*merged = *s.base
	}
	if c != nil {
		p := &PolicyConfig{
			Array:      c.Array,
			Bool:       c.Bool,
			Data:       c.Data,
			Date:       c.Date,
			DateLayout: c.DateLayout,
			Key:        c.Key,
			KeyPath:    c.KeyPath,
			Nil:        c.Nil,
			Space:      c.Space,
			Allowed:    c.Allowed,
		}
		merged = p.config(merged)
		if c.Alphabetize != nil {
			merged.Alphabetize = c.Alphabetize
		}
	}
	return merged.Encoder()
}
