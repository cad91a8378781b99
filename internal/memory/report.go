// Package memory estimates the memory a layer needs before it runs.
//
// Raw measurements are element counts; a Report turns them into bytes for a
// given minibatch size, execution mode, cache mode and data type.
package memory

import (
	"fmt"
	"math/bits"

	"github.com/born-ml/memplan/internal/tensor"
)

// Shape is the per-example size of a layer input or output.
//
// tensor.Shape implements Shape.
type Shape interface {
	// ElementsPerExample returns the number of scalar elements in one example.
	ElementsPerExample() uint64
}

// Report is the query surface shared by per-layer and aggregate reports.
//
// Every query validates its arguments first: minibatch must be positive, mode
// and cache must be declared values and dt must be a known data type.
type Report interface {
	// Name returns the display name of the reported layer or network.
	Name() string

	// Type returns the layer or network type tag.
	Type() string

	// Bytes returns the memory in one category.
	Bytes(c Category, minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error)

	// TotalBytes returns the sum of Bytes over all categories.
	TotalBytes(minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error)
}

// ForAllCacheModes returns a mapping that assigns v to every cache mode.
func ForAllCacheModes(v uint64) map[CacheMode]uint64 {
	m := make(map[CacheMode]uint64, NumCacheModes)
	for _, c := range CacheModes() {
		m[c] = v
	}
	return m
}

// validateQuery checks query arguments and returns the element width in bytes.
func validateQuery(minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error) {
	if minibatch <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMinibatch, minibatch)
	}
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}
	if !cache.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCacheMode, cache)
	}
	if !dt.Valid() {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDataType, dt)
	}
	return uint64(dt.Size()), nil //nolint:gosec // G115: Size is at most 8.
}

// mul returns the product of factors, or ErrOverflow.
func mul(factors ...uint64) (uint64, error) {
	p := uint64(1)
	for _, f := range factors {
		hi, lo := bits.Mul64(p, f)
		if hi != 0 {
			return 0, ErrOverflow
		}
		p = lo
	}
	return p, nil
}

// add returns a+b, or ErrOverflow.
func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// sumCategories adds r.Bytes over every category.
func sumCategories(r Report, minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error) {
	var total uint64
	for _, c := range Categories() {
		b, err := r.Bytes(c, minibatch, mode, cache, dt)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, b); err != nil {
			return 0, fmt.Errorf("%s: total: %w", r.Name(), err)
		}
	}
	return total, nil
}
