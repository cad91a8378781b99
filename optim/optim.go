// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/memplan/internal/optim"
)

// Updater describes the optimizer state kept during training.
type Updater = optim.Updater

// SGD sizes Stochastic Gradient Descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// Adam sizes the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam.
type AdamConfig = optim.AdamConfig

// NewSGD creates a new SGD updater.
func NewSGD(config SGDConfig) *SGD { return optim.NewSGD(config) }

// NewAdam creates a new Adam updater.
func NewAdam(config AdamConfig) *Adam { return optim.NewAdam(config) }

// Parse returns the updater named "sgd", "momentum", "adam" or "none" (nil).
func Parse(s string) (Updater, error) { return optim.Parse(s) }
