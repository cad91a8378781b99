// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the data types and per-example shapes used for memory planning.
//
// # Overview
//
// Shapes never include the minibatch axis:
//   - FeedForward(n): a flat feature vector
//   - Recurrent(size, steps): a sequence of feature vectors
//   - Convolutional(c, h, w): a channels-first image
//
// DataType.Size gives the byte width of one element.
//
//	shape := tensor.Convolutional(1, 28, 28)
//	elems := shape.ElementsPerExample() // 784
//	width := tensor.Float16.Size()      // 2
package tensor
