// Package parallel fans out independent report queries across goroutines.
package parallel

import (
	"math/bits"
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 32, // Report queries are cheap; only deep networks benefit.
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// Sum returns the sum of f(i) for i in [0, n).
//
// If any call fails, Sum returns the error of the lowest failing index so the
// result does not depend on scheduling. overflow is returned when the sum does
// not fit in a uint64.
func Sum(n int, f func(i int) (uint64, error), overflow error, cfg Config) (uint64, error) {
	values := make([]uint64, n)
	errs := make([]error, n)
	For(n, func(i int) {
		values[i], errs[i] = f(i)
	}, cfg)

	var total uint64
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			return 0, errs[i]
		}
		var carry uint64
		total, carry = bits.Add64(total, values[i], 0)
		if carry != 0 {
			return 0, overflow
		}
	}
	return total, nil
}
