package linalg

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errFailing = errors.New("failing codec")

type failingCodec struct{}

func (failingCodec) Marshal(any) ([]byte, error)  { return nil, errFailing }
func (failingCodec) Unmarshal([]byte, any) error { return errFailing }
func (failingCodec) Name() string                { return "failing" }

func TestLogger(t *testing.T) {
	t.Run("DefaultHandler", func(t *testing.T) {
		assert.NotNil(t, NewLogger(nil).Logger)
		assert.NotNil(t, NewTextLogger(slog.LevelWarn).Logger)
		assert.NotNil(t, NewJSONLogger(slog.LevelWarn).Logger)
	})

	t.Run("Noop", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	})

	t.Run("Fields", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		l.WithDimension(3).WithCodec("json").LogEncode(context.Background(), 10, nil)
		out := buf.String()
		assert.Contains(t, out, "encode completed")
		assert.Equal(t, 1, strings.Count(out, "dimension=3"))
		assert.Contains(t, out, "codec=json")
		assert.Contains(t, out, "bytes=10")

		buf.Reset()
		l.WithCodec("json").LogDecode(context.Background(), 10, 3, nil)
		assert.Equal(t, 1, strings.Count(buf.String(), "dimension=3"))

		buf.Reset()
		l.LogDecode(context.Background(), 10, 0, errFailing)
		assert.NotContains(t, buf.String(), "dimension=")
	})

	t.Run("InfoLevelHidesDebug", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(slog.NewTextHandler(&buf, nil))

		l.LogEncode(context.Background(), 32, nil)
		assert.Empty(t, buf.String())

		l.LogEncode(context.Background(), 0, errFailing)
		assert.Contains(t, buf.String(), "encode failed")
	})
}
