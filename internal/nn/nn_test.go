package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

func categoryBytes(t *testing.T, r memory.Report, n int, mode memory.Mode, cache memory.CacheMode) map[memory.Category]uint64 {
	t.Helper()
	out := make(map[memory.Category]uint64)
	for _, c := range memory.Categories() {
		b, err := r.Bytes(c, n, mode, cache, tensor.Float32)
		require.NoError(t, err)
		out[c] = b
	}
	return out
}

func TestLinear_MemoryReport(t *testing.T) {
	layer := NewLinear(784, 128)
	assert.Equal(t, uint64(100480), layer.ParameterCount())

	r, err := layer.MemoryReport("fc1", tensor.FeedForward(784), optim.NewAdam(optim.AdamConfig{}))
	require.NoError(t, err)
	assert.Equal(t, "Linear", r.Type())
	assert.Equal(t, uint64(200960), r.UpdaterStateCount())

	train, err := r.TotalBytes(32, memory.Training, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64(1740800), train)

	infer, err := r.TotalBytes(32, memory.Inference, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64(418304), infer)
}

func TestLinear_NoBias(t *testing.T) {
	assert.Equal(t, uint64(20), NewLinearWithBias(4, 5, false).ParameterCount())
}

func TestLinear_Recurrent(t *testing.T) {
	out, err := NewLinear(16, 8).OutputShape(tensor.Recurrent(16, 10))
	require.NoError(t, err)
	assert.Equal(t, tensor.Recurrent(8, 10), out)
}

func TestLinear_ShapeMismatch(t *testing.T) {
	_, err := NewLinear(784, 128).MemoryReport("fc1", tensor.FeedForward(100), nil)
	assert.Error(t, err)
}

func TestConv2D_MemoryReport(t *testing.T) {
	conv := NewConv2D(1, 6, 5, 5, 1, 0, true)
	in := tensor.Convolutional(1, 28, 28)

	out, err := conv.OutputShape(in)
	require.NoError(t, err)
	assert.Equal(t, tensor.Convolutional(6, 24, 24), out)
	assert.Equal(t, uint64(156), conv.ParameterCount())

	r, err := conv.MemoryReport("conv1", in, nil)
	require.NoError(t, err)

	infer, err := r.TotalBytes(2, memory.Inference, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64(143472), infer)

	none := categoryBytes(t, r, 2, memory.Training, memory.CacheNone)
	assert.Equal(t, uint64(2*(14400+3456)*4), none[memory.WorkingVariable])
	assert.Zero(t, none[memory.CachedVariable])

	host := categoryBytes(t, r, 2, memory.Training, memory.CacheHost)
	assert.Equal(t, uint64(2*3456*4), host[memory.WorkingVariable])
	assert.Equal(t, uint64(2*14400*4), host[memory.CachedVariable])

	// Caching moves the im2col buffer between categories without changing the total.
	for _, cache := range memory.CacheModes() {
		total, err := r.TotalBytes(2, memory.Training, cache, tensor.Float32)
		require.NoError(t, err)
		assert.Equal(t, uint64(178016), total, "cache mode %v", cache)
	}
}

func TestConv2D_Padding(t *testing.T) {
	out, err := NewConv2D(3, 16, 3, 3, 1, 1, false).OutputShape(tensor.Convolutional(3, 32, 32))
	require.NoError(t, err)
	assert.Equal(t, tensor.Convolutional(16, 32, 32), out)

	out, err = NewConv2D(3, 16, 3, 3, 2, 1, false).OutputShape(tensor.Convolutional(3, 32, 32))
	require.NoError(t, err)
	assert.Equal(t, tensor.Convolutional(16, 16, 16), out)
}

func TestConv2D_InvalidInput(t *testing.T) {
	conv := NewConv2D(3, 16, 3, 3, 1, 0, true)

	_, err := conv.OutputShape(tensor.Convolutional(1, 32, 32))
	assert.Error(t, err)
	_, err = conv.OutputShape(tensor.FeedForward(3))
	assert.Error(t, err)
	_, err = conv.OutputShape(tensor.Convolutional(3, 2, 2))
	assert.Error(t, err)
}

func TestConv2D_InvalidConfig(t *testing.T) {
	assert.Panics(t, func() { NewConv2D(0, 6, 5, 5, 1, 0, true) })
	assert.Panics(t, func() { NewConv2D(1, 6, 5, 5, 0, 0, true) })
	assert.Panics(t, func() { NewConv2D(1, 6, 5, 5, 1, -1, true) })
}

func TestMaxPool2D_MemoryReport(t *testing.T) {
	pool := NewMaxPool2D(2, 2)
	r, err := pool.MemoryReport("pool1", tensor.Convolutional(6, 24, 24), optim.NewAdam(optim.AdamConfig{}))
	require.NoError(t, err)

	assert.Equal(t, uint64(864), r.OutputShape().ElementsPerExample())
	assert.Zero(t, r.ParameterCount())
	assert.Zero(t, r.UpdaterStateCount())

	train := categoryBytes(t, r, 4, memory.Training, memory.CacheDevice)
	assert.Equal(t, uint64(4*864*4), train[memory.WorkingVariable])

	infer := categoryBytes(t, r, 4, memory.Inference, memory.CacheDevice)
	assert.Zero(t, infer[memory.WorkingVariable])
}

func TestEmbedding_MemoryReport(t *testing.T) {
	r, err := NewEmbedding(1000, 64).MemoryReport("embed", tensor.FeedForward(16), optim.NewSGD(optim.SGDConfig{Momentum: 0.9}))
	require.NoError(t, err)

	assert.Equal(t, uint64(64000), r.ParameterCount())
	assert.Equal(t, uint64(64000), r.UpdaterStateCount())
	assert.Equal(t, uint64(64*16), r.OutputShape().ElementsPerExample())
}

func TestLayerNorm_MemoryReport(t *testing.T) {
	r, err := NewLayerNorm(64, 1e-5).MemoryReport("ln", tensor.Recurrent(64, 16), nil)
	require.NoError(t, err)

	assert.Equal(t, uint64(128), r.ParameterCount())
	assert.Equal(t, uint64(32), r.WorkingVariableInference())

	wv, err := r.WorkingVariableTrain(memory.CacheHost)
	require.NoError(t, err)
	assert.Equal(t, uint64(32), wv)
}

func TestActivation_MemoryReport(t *testing.T) {
	for _, a := range []*Activation{NewReLU(), NewSigmoid(), NewTanh(), NewSiLU()} {
		t.Run(a.Type(), func(t *testing.T) {
			r, err := a.MemoryReport("act", tensor.FeedForward(10), nil)
			require.NoError(t, err)

			b := categoryBytes(t, r, 3, memory.Training, memory.CacheNone)
			assert.Equal(t, uint64(3*10*4), b[memory.Activations])
			assert.Equal(t, uint64(3*10*4), b[memory.ActivationGradients])
			assert.Zero(t, b[memory.Parameters])
		})
	}
}
