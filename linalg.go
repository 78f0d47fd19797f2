package linalg

import (
	"context"

	"github.com/hupe1980/linalg/vector"
)

// Encode serializes u with the configured codec and compression.
func Encode(u vector.Vector, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	c := o.effectiveCodec()
	log := o.logger.WithCodec(c.Name()).WithDimension(u.Len())

	data, err := c.Marshal(u)
	log.LogEncode(context.Background(), len(data), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Decode restores a vector written by Encode with the same options.
func Decode(data []byte, opts ...Option) (vector.Vector, error) {
	o := newOptions(opts...)
	c := o.effectiveCodec()
	log := o.logger.WithCodec(c.Name())

	var u vector.Vector
	err := c.Unmarshal(data, &u)
	log.LogDecode(context.Background(), len(data), u.Len(), err)
	if err != nil {
		return vector.Vector{}, err
	}
	return u, nil
}
