package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/linalg/internal/conv"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression applied by Compressed.
type Compression uint8

const (
	// CompressionNone leaves encoded bytes untouched.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

func compressionByName(name string) (Compression, bool) {
	switch name {
	case "none":
		return CompressionNone, true
	case "lz4":
		return CompressionLZ4, true
	case "zstd":
		return CompressionZSTD, true
	default:
		return 0, false
	}
}

// ErrCorruptBlock is returned when a compressed block cannot be decoded.
var ErrCorruptBlock = errors.New("codec: corrupt compressed block")

// Compressed wraps a codec and compresses its output.
//
// Each encoded value is a single block:
// [UncompressedSize uint32][CompressedSize uint32][Data...].
// CompressedSize == 0 means the data is stored raw because compression did
// not pay off.
type Compressed struct {
	Codec       Codec
	Compression Compression
}

// Marshal encodes v with the inner codec and compresses the result.
func (c Compressed) Marshal(v any) ([]byte, error) {
	raw, err := c.inner().Marshal(v)
	if err != nil {
		return nil, err
	}
	return compressBlock(raw, c.Compression)
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (c Compressed) Unmarshal(data []byte, v any) error {
	raw, err := decompressBlock(data, c.Compression)
	if err != nil {
		return err
	}
	return c.inner().Unmarshal(raw, v)
}

// Name returns "<inner>+<compression>", or the inner name when uncompressed.
func (c Compressed) Name() string {
	if c.Compression == CompressionNone {
		return c.inner().Name()
	}
	return c.inner().Name() + "+" + c.Compression.String()
}

func (c Compressed) inner() Codec {
	if c.Codec == nil {
		return Default
	}
	return c.Codec
}

const blockHeaderSize = 8

// maxDecodedSize caps the size of a single block in either direction.
const maxDecodedSize = 1 << 28

// lz4MaxRatio bounds LZ4 expansion: every output byte costs at least 1/255 of
// an input byte, plus a small constant for the final literals.
const lz4MaxRatio = 255

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDecodedSize))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

func compressBlock(data []byte, compression Compression) ([]byte, error) {
	if compression == CompressionNone {
		return data, nil
	}

	if len(data) > maxDecodedSize {
		return nil, fmt.Errorf("codec: block of %d bytes exceeds limit %d", len(data), maxDecodedSize)
	}
	uncompressedSize, err := conv.IntToUint32(len(data))
	if err != nil {
		return nil, fmt.Errorf("codec: block too large: %w", err)
	}

	var compressed []byte
	switch compression {
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed, err = compressBlockZSTD(data)
	default:
		return nil, fmt.Errorf("codec: unsupported compression %v", compression)
	}
	if err != nil {
		return nil, err
	}

	payload, compressedSize := compressed, uint32(len(compressed)) //nolint:gosec // discarded below unless smaller than data

	// Store raw when compression saves less than 10%.
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		payload, compressedSize = data, 0
	}

	result := make([]byte, blockHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(result[0:], uncompressedSize)
	binary.LittleEndian.PutUint32(result[4:], compressedSize)
	copy(result[blockHeaderSize:], payload)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // incompressible
	}
	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

func decompressBlock(data []byte, compression Compression) ([]byte, error) {
	if compression == CompressionNone {
		return data, nil
	}
	if len(data) < blockHeaderSize {
		return nil, fmt.Errorf("%w: block too small for header", ErrCorruptBlock)
	}

	uncompressedSize := int(binary.LittleEndian.Uint32(data[0:]))
	compressedSize := int(binary.LittleEndian.Uint32(data[4:]))
	body := data[blockHeaderSize:]

	if compressedSize == 0 {
		if len(body) != uncompressedSize {
			return nil, fmt.Errorf("%w: raw block has %d bytes, header says %d", ErrCorruptBlock, len(body), uncompressedSize)
		}
		return body, nil
	}
	if len(body) != compressedSize {
		return nil, fmt.Errorf("%w: compressed block has %d bytes, header says %d", ErrCorruptBlock, len(body), compressedSize)
	}

	if uncompressedSize > maxDecodedSize {
		return nil, fmt.Errorf("%w: header claims %d bytes, limit is %d", ErrCorruptBlock, uncompressedSize, maxDecodedSize)
	}

	switch compression {
	case CompressionLZ4:
		if uncompressedSize > lz4MaxRatio*compressedSize+16 {
			return nil, fmt.Errorf("%w: header claims %d bytes from %d compressed", ErrCorruptBlock, uncompressedSize, compressedSize)
		}
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(body, result)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		if n != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return result, nil

	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(body, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptBlock, err)
		}
		if len(decoded) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBlock)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("codec: unsupported compression %v", compression)
	}
}
