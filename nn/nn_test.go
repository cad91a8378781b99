package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/memplan/memory"
	"github.com/born-ml/memplan/nn"
	"github.com/born-ml/memplan/optim"
	"github.com/born-ml/memplan/tensor"
)

func TestPlan(t *testing.T) {
	model := nn.NewSequential(
		nn.NewLinear(784, 128),
		nn.NewReLU(),
		nn.NewLinear(128, 10),
	)

	report, err := nn.Plan(model, "mlp", tensor.FeedForward(784), optim.NewAdam(optim.AdamConfig{}))
	require.NoError(t, err)
	assert.Equal(t, "mlp", report.Name())

	updater, err := report.Bytes(memory.UpdaterState, 64, memory.Training, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Equal(t, uint64(2*101770*4), updater)

	updater, err = report.Bytes(memory.UpdaterState, 64, memory.Inference, memory.CacheNone, tensor.Float32)
	require.NoError(t, err)
	assert.Zero(t, updater)
}
