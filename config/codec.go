package config

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// DecodeJSON parses a parameter bundle from JSON, per spec.md §6: the
// recognized fields are exactly Bundle's tagged fields, and any unknown
// field is rejected (the caller should treat this as SCHEMA_MISSING).
func DecodeJSON(data []byte) (Bundle, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var b Bundle
	if err := dec.Decode(&b); err != nil {
		return Bundle{}, errors.Wrap(err, "decoding parameter bundle")
	}
	return b, nil
}

// EncodeJSON serializes a parameter bundle to JSON.
func EncodeJSON(b Bundle) ([]byte, error) {
	out, err := json.Marshal(b)
	if err != nil {
		return nil, errors.Wrap(err, "encoding parameter bundle")
	}
	return out, nil
}
