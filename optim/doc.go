// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim sizes optimizer state for memory planning.
//
// Plain SGD keeps no state, SGD with momentum keeps one velocity per
// parameter and Adam keeps two moments per parameter:
//
//	updater := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	state := updater.StateSize(1000) // 2000
package optim
