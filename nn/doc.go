// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers that estimate their own memory.
//
// # Overview
//
// This package contains:
//   - Layers: Linear, Conv2D, MaxPool2D, Embedding, LayerNorm
//   - Activations: ReLU, Sigmoid, Tanh, SiLU
//   - Sequential: Container for stacking layers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/memplan/memory"
//	    "github.com/born-ml/memplan/nn"
//	    "github.com/born-ml/memplan/optim"
//	    "github.com/born-ml/memplan/tensor"
//	)
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(784, 128),
//	        nn.NewReLU(),
//	        nn.NewLinear(128, 10),
//	    )
//
//	    report, err := nn.Plan(model, "mlp", tensor.FeedForward(784), optim.NewAdam(optim.AdamConfig{}))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    bytes, err := report.TotalBytes(64, memory.Training, memory.CacheNone, tensor.Float32)
//	}
//
// # Layers
//
// Conv2D: 2D convolution with an im2col working buffer that moves to cached
// memory under the host and device cache modes.
//
//	conv := nn.NewConv2D(inChannels, outChannels, kernelH, kernelW, stride, padding, useBias)
//
// Embedding: sized directly or from a tokenizer vocabulary.
//
//	embed := nn.NewEmbedding(vocabSize, dim)
package nn
