package api

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
)

// envelope is the top-level JSON object of a backend response.
type envelope map[string]any

// readEnvelope decodes the body. Valid JSON whose top level is not an
// object (null, an array, a scalar) has no fields and yields an empty envelope.
func readEnvelope(r io.Reader) (envelope, error) {
	var body any
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	obj, ok := body.(map[string]any)
	if !ok {
		return envelope{}, nil
	}
	return envelope(obj), nil
}

// field decodes env[key] into out. An absent or null key leaves out untouched.
func (env envelope) field(key string, out any) error {
	raw, ok := env[key]
	if !ok || raw == nil {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("%w: field %q: %v", ErrDecode, key, err)
	}
	return nil
}
