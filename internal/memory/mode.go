package memory

import (
	"fmt"
	"strings"
)

// Mode selects whether memory is planned for inference or for training.
type Mode int

// Execution modes.
const (
	Inference Mode = iota
	Training
)

// Valid reports whether m is a declared mode.
func (m Mode) Valid() bool {
	return m == Inference || m == Training
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Inference:
		return "inference"
	case Training:
		return "training"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "inference"/"infer" or "training"/"train" into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inference", "infer":
		return Inference, nil
	case "training", "train":
		return Training, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// CacheMode selects how much intermediate state a layer retains between the
// forward and backward pass. It only affects training.
//
// Extending this set requires every per-cache-mode measurement to gain an entry;
// Builder.Build rejects explicit mappings that miss one.
type CacheMode int

// Cache modes.
const (
	CacheNone   CacheMode = iota // Recompute; nothing retained.
	CacheHost                    // Retain in host memory.
	CacheDevice                  // Retain in device memory.

	// NumCacheModes is the number of declared cache modes.
	NumCacheModes = iota
)

// CacheModes returns every cache mode in declaration order.
func CacheModes() []CacheMode {
	return []CacheMode{CacheNone, CacheHost, CacheDevice}
}

// Valid reports whether c is a declared cache mode.
func (c CacheMode) Valid() bool {
	return c >= CacheNone && c < NumCacheModes
}

// String returns the cache mode name.
func (c CacheMode) String() string {
	switch c {
	case CacheNone:
		return "none"
	case CacheHost:
		return "host"
	case CacheDevice:
		return "device"
	default:
		return fmt.Sprintf("CacheMode(%d)", int(c))
	}
}

// ParseCacheMode converts "none", "host" or "device" into a CacheMode.
func ParseCacheMode(s string) (CacheMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return CacheNone, nil
	case "host":
		return CacheHost, nil
	case "device":
		return CacheDevice, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidCacheMode, s)
	}
}
