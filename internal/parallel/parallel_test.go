package parallel

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test failure")
var errOverflow = errors.New("overflow")

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestSum(t *testing.T) {
	configs := map[string]Config{
		"sequential": {Enabled: false},
		"parallel":   {Enabled: true, NumWorkers: 4, MinChunkSize: 1},
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			total, err := Sum(100, func(i int) (uint64, error) {
				return uint64(i), nil
			}, errOverflow, cfg)
			require.NoError(t, err)
			assert.Equal(t, uint64(4950), total)
		})
	}
}

func TestSum_FirstErrorWins(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	_, err := Sum(64, func(i int) (uint64, error) {
		if i == 10 || i == 50 {
			return 0, errTest
		}
		return 1, nil
	}, errOverflow, cfg)
	assert.ErrorIs(t, err, errTest)
}

func TestSum_Overflow(t *testing.T) {
	_, err := Sum(2, func(_ int) (uint64, error) {
		return math.MaxUint64, nil
	}, errOverflow, Config{})
	assert.ErrorIs(t, err, errOverflow)
}

func TestSum_Empty(t *testing.T) {
	total, err := Sum(0, func(_ int) (uint64, error) {
		return 1, nil
	}, errOverflow, DefaultConfig())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func BenchmarkSum(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000
	f := func(i int) (uint64, error) { return uint64(i), nil }

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Sum(n, f, errOverflow, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			_, _ = Sum(n, f, errOverflow, cfgSeq)
		}
	})
}
