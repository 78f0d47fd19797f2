package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Vectors encode as plain arrays of numbers, which keeps the output readable
// by any JSON consumer. NaN and infinite entries cannot be encoded.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
