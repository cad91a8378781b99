package memory_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/parallel"
	"github.com/born-ml/memplan/internal/tensor"
)

var errBroken = errors.New("broken report")

// brokenReport fails every query.
type brokenReport struct{}

func (brokenReport) Name() string { return "broken" }
func (brokenReport) Type() string { return "Broken" }
func (brokenReport) Bytes(memory.Category, int, memory.Mode, memory.CacheMode, tensor.DataType) (uint64, error) {
	return 0, errBroken
}
func (brokenReport) TotalBytes(int, memory.Mode, memory.CacheMode, tensor.DataType) (uint64, error) {
	return 0, errBroken
}

func TestNetworkReport_SumsLayers(t *testing.T) {
	a := scenarioReport(t)
	b := cachedReport(t)

	configs := map[string]parallel.Config{
		"sequential": {Enabled: false},
		"parallel":   {Enabled: true, NumWorkers: 2, MinChunkSize: 1},
	}
	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			net, err := memory.NewNetworkReport("mlp", "Sequential", []memory.Report{a, b}, cfg)
			require.NoError(t, err)

			for _, mode := range []memory.Mode{memory.Inference, memory.Training} {
				for _, cache := range memory.CacheModes() {
					ta, err := a.TotalBytes(8, mode, cache, tensor.Float32)
					require.NoError(t, err)
					tb, err := b.TotalBytes(8, mode, cache, tensor.Float32)
					require.NoError(t, err)

					got, err := net.TotalBytes(8, mode, cache, tensor.Float32)
					require.NoError(t, err)
					assert.Equal(t, ta+tb, got, "%v/%v", mode, cache)
				}
			}
		})
	}
}

func TestNetworkReport_Nested(t *testing.T) {
	inner, err := memory.NewNetworkReport("block", "Sequential", []memory.Report{scenarioReport(t)}, parallel.Config{})
	require.NoError(t, err)
	outer, err := memory.NewNetworkReport("model", "Sequential", []memory.Report{inner, scenarioReport(t)}, parallel.Config{})
	require.NoError(t, err)

	got, err := outer.TotalBytes(8, memory.Training, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64(2*19088), got)
	assert.Equal(t, "NetworkReport(name=model, type=Sequential, layers=2)", outer.String())
}

func TestNetworkReport_ManyLayersParallel(t *testing.T) {
	layers := make([]memory.Report, 200)
	for i := range layers {
		r, err := memory.NewBuilder(fmt.Sprintf("fc%d", i), "Linear", tensor.FeedForward(1), tensor.FeedForward(1)).
			StandardMemory(uint64(i), 0).
			Build()
		require.NoError(t, err)
		layers[i] = r
	}
	net, err := memory.NewNetworkReport("deep", "Sequential", layers, parallel.DefaultConfig())
	require.NoError(t, err)

	got, err := net.Bytes(memory.Parameters, 1, memory.Inference, memory.CacheNone, tensor.Uint8)
	require.NoError(t, err)
	assert.Equal(t, uint64(199*200/2), got)
}

func TestNetworkReport_Errors(t *testing.T) {
	_, err := memory.NewNetworkReport("", "Sequential", nil, parallel.Config{})
	assert.ErrorIs(t, err, memory.ErrMissingIdentity)

	_, err = memory.NewNetworkReport("net", "Sequential", []memory.Report{nil}, parallel.Config{})
	assert.ErrorIs(t, err, memory.ErrMissingIdentity)

	net, err := memory.NewNetworkReport("net", "Sequential", []memory.Report{scenarioReport(t), brokenReport{}}, parallel.Config{})
	require.NoError(t, err)

	_, err = net.TotalBytes(1, memory.Training, memory.CacheNone, tensor.Float32)
	assert.ErrorIs(t, err, errBroken)

	_, err = net.Bytes(memory.Parameters, 0, memory.Training, memory.CacheNone, tensor.Float32)
	assert.ErrorIs(t, err, memory.ErrInvalidMinibatch)
}

func TestNetworkReport_LayersCopied(t *testing.T) {
	layers := []memory.Report{scenarioReport(t)}
	net, err := memory.NewNetworkReport("net", "Sequential", layers, parallel.Config{})
	require.NoError(t, err)

	layers[0] = brokenReport{}
	_, err = net.TotalBytes(1, memory.Inference, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)

	got := net.Layers()
	got[0] = brokenReport{}
	assert.Equal(t, "dense", net.Layers()[0].Name())
}
