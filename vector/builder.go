package vector

import "slices"

// Builder assembles entries for a Vector.
//
// Unlike Vector, a Builder is mutable. It is not safe for concurrent use.
type Builder struct {
	entries []float64
}

// NewBuilder returns a Builder seeded with a copy of entries.
func NewBuilder(entries []float64) *Builder {
	return &Builder{entries: slices.Clone(entries)}
}

// FromVector returns a Builder seeded with the entries of u.
func FromVector(u Vector) *Builder {
	return NewBuilder(u.entries)
}

// Len returns the current number of entries.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Replace discards the current entries and takes a copy of entries.
// The new length need not match the old one.
func (b *Builder) Replace(entries []float64) *Builder {
	b.entries = slices.Clone(entries)
	return b
}

// Set overwrites the entry at position.
func (b *Builder) Set(position int, x float64) error {
	if err := checkIndex(position, len(b.entries)); err != nil {
		return err
	}
	b.entries[position] = x
	return nil
}

// Append adds entries to the end.
func (b *Builder) Append(xs ...float64) *Builder {
	b.entries = append(b.entries, xs...)
	return b
}

// Build returns a Vector holding a snapshot of the current entries.
// Later changes to the Builder do not affect it.
func (b *Builder) Build() Vector {
	return New(b.entries)
}
