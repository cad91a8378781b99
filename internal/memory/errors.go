package memory

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrMissingIdentity  = errors.New("report identity incomplete")
	ErrMissingCacheMode = errors.New("no measurement for cache mode")
	ErrInvalidMinibatch = errors.New("minibatch size must be > 0")
	ErrInvalidMode      = errors.New("invalid memory use mode")
	ErrInvalidCacheMode = errors.New("invalid cache mode")
	ErrInvalidDataType  = errors.New("invalid data type")
	ErrOverflow         = errors.New("byte count overflows uint64")
)

// CacheModeError reports a per-cache-mode measurement that lacks an entry.
type CacheModeError struct {
	Layer     string    // Layer name
	Field     string    // Measurement, e.g. "working_fixed_train"
	CacheMode CacheMode // The cache mode with no entry
}

// Error implements the error interface.
func (e *CacheModeError) Error() string {
	return fmt.Sprintf("layer %q: %s: %v %s", e.Layer, e.Field, ErrMissingCacheMode, e.CacheMode)
}

// Unwrap returns ErrMissingCacheMode.
func (e *CacheModeError) Unwrap() error {
	return ErrMissingCacheMode
}
