// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/memplan/internal/nn"
	"github.com/born-ml/memplan/internal/parallel"
	"github.com/born-ml/memplan/internal/tokenizer"
	"github.com/born-ml/memplan/memory"
	"github.com/born-ml/memplan/optim"
	"github.com/born-ml/memplan/tensor"
)

// Layer is the interface of every layer that can be planned.
type Layer = nn.Layer

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with bias.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// Conv2D represents a 2D convolutional layer.
type Conv2D = nn.Conv2D

// NewConv2D creates a new 2D convolutional layer.
func NewConv2D(inChannels, outChannels, kernelH, kernelW, stride, padding int, useBias bool) *Conv2D {
	return nn.NewConv2D(inChannels, outChannels, kernelH, kernelW, stride, padding, useBias)
}

// MaxPool2D represents a 2D max pooling layer.
type MaxPool2D = nn.MaxPool2D

// NewMaxPool2D creates a new 2D max pooling layer.
func NewMaxPool2D(kernelSize, stride int) *MaxPool2D {
	return nn.NewMaxPool2D(kernelSize, stride)
}

// Embedding represents a token embedding table.
type Embedding = nn.Embedding

// NewEmbedding creates a new embedding layer.
func NewEmbedding(numEmbeddings, embeddingDim int) *Embedding {
	return nn.NewEmbedding(numEmbeddings, embeddingDim)
}

// NewEmbeddingForEncoding creates an embedding sized to a tiktoken encoding
// such as "cl100k_base".
func NewEmbeddingForEncoding(encoding string, embeddingDim int) (*Embedding, error) {
	enc, err := tokenizer.NewEncoding(encoding)
	if err != nil {
		return nil, err
	}
	return nn.NewEmbeddingForEncoding(enc, embeddingDim), nil
}

// LayerNorm represents layer normalization.
type LayerNorm = nn.LayerNorm

// NewLayerNorm creates a new layer normalization layer.
func NewLayerNorm(normalizedShape int, epsilon float32) *LayerNorm {
	return nn.NewLayerNorm(normalizedShape, epsilon)
}

// Flatten reshapes an example into a flat feature vector.
type Flatten = nn.Flatten

// NewFlatten creates a new Flatten layer.
func NewFlatten() *Flatten { return nn.NewFlatten() }

// Activations

// Activation represents an element-wise activation.
type Activation = nn.Activation

// NewReLU creates a ReLU activation.
func NewReLU() *Activation { return nn.NewReLU() }

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Activation { return nn.NewSigmoid() }

// NewTanh creates a Tanh activation.
func NewTanh() *Activation { return nn.NewTanh() }

// NewSiLU creates a SiLU activation.
func NewSiLU() *Activation { return nn.NewSiLU() }

// Containers

// Sequential chains layers.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return nn.NewSequential(layers...)
}

// Plan returns the network report of model for input shape in, using the
// default parallel configuration. updater may be nil.
func Plan(model *Sequential, name string, in tensor.Shape, updater optim.Updater) (*memory.NetworkReport, error) {
	return model.MemoryReport(name, in, updater, parallel.DefaultConfig())
}
