// Package conv provides checked conversions between int and the fixed-width
// integers used in length and size headers.
package conv
