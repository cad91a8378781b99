// Package optim sizes the state that optimization algorithms keep per parameter.
//
// This package provides:
//   - Updater interface: state size for a given parameter count
//   - SGD: Stochastic Gradient Descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Example usage:
//
//	updater := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	stateElements := updater.StateSize(paramCount)
package optim

import (
	"fmt"
	"strings"
)

// Updater describes the optimizer state kept during training.
type Updater interface {
	// Name returns the optimizer name.
	Name() string

	// StateSize returns the number of state elements kept for paramCount parameters.
	StateSize(paramCount uint64) uint64
}

// StateSize returns u.StateSize(paramCount), or zero for a nil updater.
// A nil updater describes an inference-only model.
func StateSize(u Updater, paramCount uint64) uint64 {
	if u == nil {
		return 0
	}
	return u.StateSize(paramCount)
}

// Parse returns the updater named by s with its default configuration.
// Accepted names: "sgd", "momentum", "adam", "none".
func Parse(s string) (Updater, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sgd":
		return NewSGD(SGDConfig{LR: 0.01}), nil
	case "momentum":
		return NewSGD(SGDConfig{LR: 0.01, Momentum: 0.9}), nil
	case "adam":
		return NewAdam(AdamConfig{}), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", s)
	}
}
