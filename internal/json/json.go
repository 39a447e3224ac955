// Package json wraps bytedance/sonic behind the encoding/json API surface
// used by this module. Sonic is configured for standard-library
// compatibility so struct tags (including the ",string" int64 convention
// of the Google JSON wire format) behave exactly as encoding/json.
package json

import (
	stdjson "encoding/json"
	"io"

	"github.com/bytedance/sonic"
)

var cfg = sonic.ConfigStd

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return cfg.Marshal(v)
}

// MarshalIndent returns the JSON encoding of v with the given indentation.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return cfg.MarshalIndent(v, prefix, indent)
}

// Unmarshal parses data and stores the result in the value pointed to by v.
func Unmarshal(data []byte, v any) error {
	return cfg.Unmarshal(data, v)
}

// Valid reports whether data is valid JSON.
func Valid(data []byte) bool {
	return cfg.Valid(data)
}

// Compatibility aliases. Code handling raw payloads or custom codecs keeps
// using the standard library types so values interoperate with any
// encoding/json caller.
type (
	RawMessage  = stdjson.RawMessage
	Number      = stdjson.Number
	Marshaler   = stdjson.Marshaler
	Unmarshaler = stdjson.Unmarshaler
)

// Encoder writes JSON values to an output stream.
type Encoder = sonic.Encoder

// Decoder reads and decodes JSON values from an input stream.
type Decoder = sonic.Decoder

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return cfg.NewEncoder(w)
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return cfg.NewDecoder(r)
}
