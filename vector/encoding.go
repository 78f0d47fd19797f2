package vector

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/hupe1980/linalg/internal/conv"
)

// Binary layout: [magic "LAV1"][length uint32][length x float64 bits], little-endian.
const (
	binaryMagic      = "LAV1"
	binaryHeaderSize = len(binaryMagic) + 4
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (u Vector) MarshalBinary() ([]byte, error) {
	n, err := conv.IntToUint32(len(u.entries))
	if err != nil {
		return nil, fmt.Errorf("vector too long: %w", err)
	}

	buf := make([]byte, binaryHeaderSize+8*len(u.entries))
	copy(buf, binaryMagic)
	binary.LittleEndian.PutUint32(buf[len(binaryMagic):], n)

	off := binaryHeaderSize
	for _, x := range u.entries {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(x))
		off += 8
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// It replaces the receiver's contents; data is not retained.
func (u *Vector) UnmarshalBinary(data []byte) error {
	if len(data) < binaryHeaderSize {
		return fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidEncoding, len(data))
	}
	if string(data[:len(binaryMagic)]) != binaryMagic {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidEncoding, data[:len(binaryMagic)])
	}

	n, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[len(binaryMagic):]))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if payload := len(data) - binaryHeaderSize; payload != 8*n {
		return fmt.Errorf("%w: header declares %d entries, payload has %d bytes", ErrInvalidEncoding, n, payload)
	}

	entries := make([]float64, n)
	off := binaryHeaderSize
	for i := range entries {
		entries[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
		off += 8
	}
	u.entries = entries
	return nil
}

// MarshalJSON encodes u as a JSON array of numbers.
// NaN and infinite entries cannot be represented and produce an error.
func (u Vector) MarshalJSON() ([]byte, error) {
	if len(u.entries) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(u.entries)
}

// UnmarshalJSON decodes a JSON array of numbers into u.
// JSON null decodes to the empty vector.
func (u *Vector) UnmarshalJSON(data []byte) error {
	var entries []float64
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	u.entries = entries
	return nil
}
