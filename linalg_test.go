package linalg

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/hupe1980/linalg/codec"
	"github.com/hupe1980/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	entries := make([]float64, 512)
	for i := range entries {
		entries[i] = float64(i%8) - 3.5
	}
	u := vector.New(entries)

	tests := []struct {
		name string
		opts []Option
	}{
		{"Default", nil},
		{"NilCodec", []Option{WithCodec(nil)}},
		{"JSON", []Option{WithCodec(codec.JSON{})}},
		{"GoJSON+LZ4", []Option{WithCodec(codec.GoJSON{}), WithCompression(codec.CompressionLZ4)}},
		{"Binary+ZSTD", []Option{WithCompression(codec.CompressionZSTD)}},
		{"NilLogger", []Option{WithLogger(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(u, tt.opts...)
			require.NoError(t, err)

			got, err := Decode(data, tt.opts...)
			require.NoError(t, err)
			assert.True(t, u.Equal(got))
		})
	}
}

func TestCodecName(t *testing.T) {
	assert.Equal(t, "binary", CodecName())
	assert.Equal(t, "json+zstd", CodecName(WithCodec(codec.JSON{}), WithCompression(codec.CompressionZSTD)))

	// The recorded name restores an equivalent codec.
	opts := []Option{WithCompression(codec.CompressionLZ4)}
	data, err := Encode(vector.New([]float64{1, 2, 3}), opts...)
	require.NoError(t, err)

	c, ok := codec.ByName(CodecName(opts...))
	require.True(t, ok)
	var got vector.Vector
	require.NoError(t, c.Unmarshal(data, &got))
	assert.Equal(t, []float64{1, 2, 3}, got.Entries())
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("nope"))
	assert.ErrorIs(t, err, vector.ErrInvalidEncoding)

	_, err = Decode([]byte{1, 2, 3}, WithCompression(codec.CompressionZSTD))
	assert.ErrorIs(t, err, codec.ErrCorruptBlock)
}

func TestEncodeLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Encode(vector.New([]float64{1, 2}), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "encode completed")
	assert.Contains(t, buf.String(), "codec=binary")
	assert.Equal(t, 1, strings.Count(buf.String(), "dimension=2"))
	assert.Contains(t, buf.String(), "bytes=24")

	buf.Reset()
	_, err = Decode([]byte("bad"), WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "decode failed")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	_, err := Encode(vector.New([]float64{1}), WithCodec(failingCodec{}), WithLogger(logger))
	require.ErrorIs(t, err, errFailing)
	assert.Contains(t, buf.String(), `"msg":"encode failed"`)
	assert.Contains(t, buf.String(), `"dimension":1`)
}
