// Package codec centralizes vector encoding.
//
// Every codec has a stable name. Callers that persist encoded vectors should
// record the name alongside the bytes and select the codec with ByName when
// reading them back; bytes written by one codec do not decode with another.
package codec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedType is returned when a codec cannot handle the given value.
var ErrUnsupportedType = errors.New("codec: unsupported type")

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Binary{}

// ByName returns a built-in codec by its stable name.
//
// Compressed codecs are addressed as "<inner>+<compression>", e.g. "binary+zstd".
func ByName(name string) (Codec, bool) {
	if inner, suffix, ok := strings.Cut(name, "+"); ok {
		c, ok := ByName(inner)
		if !ok {
			return nil, false
		}
		comp, ok := compressionByName(suffix)
		if !ok || comp == CompressionNone {
			return nil, false
		}
		return Compressed{Codec: c, Compression: comp}, true
	}

	switch name {
	case "binary":
		return Binary{}, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
