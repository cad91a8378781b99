// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/memplan/internal/tensor"
)

// DataType identifies the numeric representation of one element.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32  DataType = tensor.Float32
	Float64  DataType = tensor.Float64
	Float16  DataType = tensor.Float16
	BFloat16 DataType = tensor.BFloat16
	Int32    DataType = tensor.Int32
	Int64    DataType = tensor.Int64
	Uint8    DataType = tensor.Uint8
	Bool     DataType = tensor.Bool
)

// Shape represents the dimensions of a single example.
// Example: Shape{3, 32, 32} is a 3-channel 32×32 image.
type Shape = tensor.Shape

// FeedForward returns the shape of a flat feature vector.
func FeedForward(size int) Shape { return tensor.FeedForward(size) }

// Recurrent returns the shape of a sequence of feature vectors.
func Recurrent(size, steps int) Shape { return tensor.Recurrent(size, steps) }

// Convolutional returns the shape of a channels-first image.
func Convolutional(channels, height, width int) Shape {
	return tensor.Convolutional(channels, height, width)
}

// ParseShape parses a dimension list such as "1,28,28" or "1x28x28".
func ParseShape(s string) (Shape, error) { return tensor.ParseShape(s) }

// ParseDataType converts a name such as "float32" or "half" into a DataType.
func ParseDataType(s string) (DataType, error) { return tensor.ParseDataType(s) }

// DataTypes returns every supported data type.
func DataTypes() []DataType { return tensor.DataTypes() }
