package codec

import (
	"testing"

	"github.com/hupe1980/linalg/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"binary", true},
		{"json", true},
		{"go-json", true},
		{"binary+lz4", true},
		{"json+zstd", true},
		{"go-json+lz4", true},
		{"binary+none", false},
		{"binary+gzip", false},
		{"msgpack", false},
		{"msgpack+zstd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, c)
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestCodecsRoundTripVector(t *testing.T) {
	u := vector.New([]float64{1, -2.5, 3, 0.125})

	for _, c := range []Codec{Binary{}, JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(u)
			require.NoError(t, err)

			var got vector.Vector
			require.NoError(t, c.Unmarshal(data, &got))
			assert.True(t, u.Equal(got), "got %v", got)
		})
	}
}

func TestJSONCodecsAgree(t *testing.T) {
	u := vector.New([]float64{1.5, -2, 1e-9})

	std := MustMarshal(JSON{}, u)
	fast := MustMarshal(GoJSON{}, u)
	assert.JSONEq(t, string(std), string(fast))

	var got vector.Vector
	require.NoError(t, GoJSON{}.Unmarshal(std, &got))
	assert.True(t, u.Equal(got))
}

func TestBinaryUnsupportedType(t *testing.T) {
	_, err := Binary{}.Marshal(42)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	var x int
	assert.ErrorIs(t, Binary{}.Unmarshal([]byte{1}, &x), ErrUnsupportedType)
	// Value receivers cannot be decoded into.
	assert.ErrorIs(t, Binary{}.Unmarshal([]byte{1}, vector.Vector{}), ErrUnsupportedType)
}

func TestMustMarshal(t *testing.T) {
	assert.NotEmpty(t, MustMarshal(nil, vector.New([]float64{1})))
	assert.Panics(t, func() { MustMarshal(Binary{}, "not a vector") })
}
