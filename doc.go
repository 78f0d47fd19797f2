// Package linalg encodes and decodes vectors for storage or transport.
//
// The value type itself lives in the vector package; this package wires it to
// the codec package and adds structured logging.
//
// # Quick Start
//
//	u := vector.New([]float64{1, -2, 3})
//	data, _ := linalg.Encode(u, linalg.WithCompression(codec.CompressionZSTD))
//	v, _ := linalg.Decode(data, linalg.WithCompression(codec.CompressionZSTD))
//
// Encode and Decode must be given matching codec and compression options; the
// encoded bytes do not describe themselves. Use CodecName to record
// the combination next to the data and codec.ByName to restore it.
package linalg
