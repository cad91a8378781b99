package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateSize(t *testing.T) {
	tests := []struct {
		name    string
		updater Updater
		want    uint64
	}{
		{"nil", nil, 0},
		{"sgd", NewSGD(SGDConfig{LR: 0.1}), 0},
		{"momentum", NewSGD(SGDConfig{LR: 0.1, Momentum: 0.9}), 1000},
		{"adam", NewAdam(AdamConfig{}), 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StateSize(tt.updater, 1000))
		})
	}
}

func TestNewAdam_Defaults(t *testing.T) {
	a := NewAdam(AdamConfig{})
	assert.InDelta(t, 0.001, a.GetLR(), 1e-9)
	assert.InDelta(t, 0.9, a.beta1, 1e-6)
	assert.InDelta(t, 0.999, a.beta2, 1e-6)
	assert.InDelta(t, 1e-8, a.eps, 1e-12)
}

func TestParse(t *testing.T) {
	u, err := Parse("adam")
	require.NoError(t, err)
	assert.Equal(t, "adam", u.Name())

	u, err = Parse("momentum")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), u.StateSize(5))

	u, err = Parse("none")
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = Parse("lbfgs")
	assert.Error(t, err)
}
