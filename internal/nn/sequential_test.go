package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/parallel"
	"github.com/born-ml/memplan/internal/tensor"
)

func TestSequential_MLP(t *testing.T) {
	model := NewSequential(
		NewLinear(784, 128),
		NewReLU(),
		NewLinear(128, 10),
	)
	assert.Equal(t, 3, model.Len())

	out, err := model.OutputShape(tensor.FeedForward(784))
	require.NoError(t, err)
	assert.Equal(t, tensor.FeedForward(10), out)

	updater := optim.NewAdam(optim.AdamConfig{})
	net, err := model.MemoryReport("mlp", tensor.FeedForward(784), updater, parallel.DefaultConfig())
	require.NoError(t, err)

	layers := net.Layers()
	require.Len(t, layers, 3)
	assert.Equal(t, "0_linear", layers[0].Name())
	assert.Equal(t, "1_relu", layers[1].Name())
	assert.Equal(t, "2_linear", layers[2].Name())

	params, err := net.Bytes(memory.Parameters, 1, memory.Inference, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64(101770*4), params)

	for _, mode := range []memory.Mode{memory.Inference, memory.Training} {
		var sum uint64
		for _, l := range layers {
			b, err := l.TotalBytes(64, mode, memory.CacheNone, tensor.Float32)
			require.NoError(t, err)
			sum += b
		}
		total, err := net.TotalBytes(64, mode, memory.CacheNone, tensor.Float32)
		require.NoError(t, err)
		assert.Equal(t, sum, total)
	}
}

func TestSequential_CNN(t *testing.T) {
	model := NewSequential(
		NewConv2D(1, 6, 5, 5, 1, 0, true),
		NewReLU(),
		NewMaxPool2D(2, 2),
	)
	model.Add(NewConv2D(6, 16, 5, 5, 1, 0, true))

	out, err := model.OutputShape(tensor.Convolutional(1, 28, 28))
	require.NoError(t, err)
	assert.Equal(t, tensor.Convolutional(16, 8, 8), out)

	model.Add(NewReLU())
	model.Add(NewMaxPool2D(2, 2))
	model.Add(NewFlatten())
	model.Add(NewLinear(256, 10))

	out, err = model.OutputShape(tensor.Convolutional(1, 28, 28))
	require.NoError(t, err)
	assert.Equal(t, tensor.FeedForward(10), out)

	net, err := model.MemoryReport("lenet", tensor.Convolutional(1, 28, 28), nil, parallel.Config{})
	require.NoError(t, err)
	assert.Equal(t, "Sequential", net.Type())
	assert.Equal(t, "6_flatten", net.Layers()[6].Name())

	// conv1 156 + conv2 2416 + fc 2570.
	params, err := net.Bytes(memory.Parameters, 1, memory.Inference, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64((156+2416+2570)*4), params)
}

func TestSequential_ShapeError(t *testing.T) {
	model := NewSequential(NewLinear(784, 128), NewLinear(64, 10))

	_, err := model.OutputShape(tensor.FeedForward(784))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layer 1 (Linear)")

	_, err = model.MemoryReport("bad", tensor.FeedForward(784), nil, parallel.Config{})
	assert.Error(t, err)
}
