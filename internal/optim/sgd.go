package optim

// SGD sizes Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Plain SGD keeps no state; momentum keeps one velocity element per parameter.
type SGD struct {
	lr       float32
	momentum float32
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD updater.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Name returns "sgd".
func (s *SGD) Name() string { return "sgd" }

// StateSize returns paramCount with momentum, zero without.
func (s *SGD) StateSize(paramCount uint64) uint64 {
	if s.momentum == 0 {
		return 0
	}
	return paramCount
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float32 { return s.lr }
