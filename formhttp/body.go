package formhttp

import (
	"github.com/segmentio/encoding/json"
	"github.com/signadot/urlform"
)

const (
	ContentTypeForm = "application/x-www-form-urlencoded; charset=utf-8"
	ContentTypeJSON = "application/json"
)

// Body is an encodable request body.
type Body interface {
	Encode() ([]byte, error)
	ContentType() string
}

// Query is an encodable URL query.  The result is already percent
// encoded.
type Query interface {
	EncodeQuery() (string, error)
}

// FormData form encodes Value, as a body or as a query.  A nil Encoder
// uses the default policies.
type FormData struct {
	Encoder *urlform.Encoder
	Value   any
}

func (f FormData) encoder() *urlform.Encoder {
	if f.Encoder == nil {
		return urlform.New()
	}
	return f.Encoder
}

func (f FormData) Encode() ([]byte, error) {
	return f.encoder().Encode(f.Value)
}

func (f FormData) EncodeQuery() (string, error) {
	return f.encoder().EncodeString(f.Value)
}

func (FormData) ContentType() string { return ContentTypeForm }

// JSONData encodes Value as JSON.
type JSONData struct {
	Value any
}

func (j JSONData) Encode() ([]byte, error) {
	return json.Marshal(j.Value)
}

func (JSONData) ContentType() string { return ContentTypeJSON }
