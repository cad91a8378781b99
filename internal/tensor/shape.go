package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape represents the dimensions of a single example.
//
// The minibatch axis is never part of a Shape: a dense activation of width 128
// is Shape{128} regardless of how many examples are processed together, and an
// image batch [N, C, H, W] is described by Shape{C, H, W}.
type Shape []int

// FeedForward returns the shape of a flat feature vector.
func FeedForward(size int) Shape {
	return Shape{size}
}

// Recurrent returns the shape of a sequence of feature vectors.
func Recurrent(size, steps int) Shape {
	return Shape{size, steps}
}

// Convolutional returns the shape of a channels-first image.
func Convolutional(channels, height, width int) Shape {
	return Shape{channels, height, width}
}

// NumElements returns the number of elements in one example.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// ElementsPerExample returns NumElements as an unsigned count.
// Empty and invalid shapes report zero: a shape with no dimensions
// describes no example.
func (s Shape) ElementsPerExample() uint64 {
	if len(s) == 0 || s.Validate() != nil {
		return 0
	}
	return uint64(s.NumElements()) //nolint:gosec // G115: validated dims are positive.
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as "[3 28 28]".
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, dim := range s {
		parts[i] = strconv.Itoa(dim)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ParseShape parses a comma- or x-separated dimension list such as "1,28,28" or "1x28x28".
func ParseShape(s string) (Shape, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == ' '
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty shape %q", s)
	}
	shape := make(Shape, len(fields))
	for i, f := range fields {
		dim, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q in shape %q: %w", f, s, err)
		}
		shape[i] = dim
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
