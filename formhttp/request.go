package formhttp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/signadot/urlform/debug"
)

// NewRequest creates a request with headers added.  headers may be nil.
func NewRequest(ctx context.Context, method, url string, headers http.Header) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

type bodyConfig struct {
	gzip  bool
	level int
}

type BodyOption func(*bodyConfig)

// Gzip compresses the body and sets Content-Encoding.
func Gzip() BodyOption {
	return GzipLevel(gzip.DefaultCompression)
}

func GzipLevel(level int) BodyOption {
	return func(c *bodyConfig) {
		c.gzip = true
		c.level = level
	}
}

// SetBody encodes body into req.  The Content-Type header is set from the
// body only when req has none.
func SetBody(req *http.Request, body Body, opts ...BodyOption) error {
	cfg := &bodyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	d, err := body.Encode()
	if err != nil {
		return &ParameterEncodingError{Err: err}
	}
	if cfg.gzip {
		d, err = compress(d, cfg.level)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Encoding", "gzip")
	}
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", body.ContentType())
	}
	if debug.HTTP() {
		debug.Logf("body %s %d bytes\n", req.Header.Get("Content-Type"), len(d))
	}
	req.Body = io.NopCloser(bytes.NewReader(d))
	req.ContentLength = int64(len(d))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(d)), nil
	}
	return nil
}

func compress(d []byte, level int) ([]byte, error) {
	buf := &bytes.Buffer{}
	w, err := gzip.NewWriterLevel(buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(d); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SetQuery appends the encoded query to req's URL query.  When both are
// empty the query is removed.
func SetQuery(req *http.Request, q Query) error {
	if req.URL == nil {
		return &ParameterEncodingError{Err: ErrMissingURL}
	}
	s, err := q.EncodeQuery()
	if err != nil {
		return &ParameterEncodingError{Err: err}
	}
	parts := make([]string, 0, 2)
	for _, p := range []string{req.URL.RawQuery, s} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	req.URL.RawQuery = strings.Join(parts, "&")
	req.URL.ForceQuery = false
	if debug.HTTP() {
		debug.Logf("query %s\n", req.URL.RawQuery)
	}
	return nil
}
