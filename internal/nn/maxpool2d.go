package nn

import (
	"fmt"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

// MaxPool2D is a 2D max pooling layer.
//
// MaxPool2D has no learnable parameters. In training it keeps the argmax
// index of every output element for the backward pass.
//
// Input shape:  [channels, height, width]
// Output shape: [channels, out_height, out_width]
//
// Where:
//
//	out_height = (height - kernelSize) / stride + 1
//	out_width = (width - kernelSize) / stride + 1
type MaxPool2D struct {
	kernelSize int
	stride     int
}

// NewMaxPool2D creates a new 2D max pooling layer.
//
// Common patterns:
//   - NewMaxPool2D(2, 2): Standard 2x2 non-overlapping pooling
//   - NewMaxPool2D(3, 2): Overlapping 3x3 pooling with stride 2
func NewMaxPool2D(kernelSize, stride int) *MaxPool2D {
	if kernelSize <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid kernel size %d", kernelSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid stride %d", stride))
	}
	return &MaxPool2D{kernelSize: kernelSize, stride: stride}
}

// Type returns "MaxPool2D".
func (m *MaxPool2D) Type() string { return "MaxPool2D" }

// OutputShape returns [channels, out_height, out_width].
func (m *MaxPool2D) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if err := checkInput("maxpool2d", in, 3, 0); err != nil {
		return nil, err
	}
	if len(in) != 3 {
		return nil, fmt.Errorf("maxpool2d: expected [channels, height, width] input, got %v", in)
	}
	if in[1] < m.kernelSize || in[2] < m.kernelSize {
		return nil, fmt.Errorf("maxpool2d: kernel %d larger than input %v", m.kernelSize, in)
	}
	outH := (in[1]-m.kernelSize)/m.stride + 1
	outW := (in[2]-m.kernelSize)/m.stride + 1
	return tensor.Convolutional(in[0], outH, outW), nil
}

// MemoryReport returns the memory report of the layer.
func (m *MaxPool2D) MemoryReport(name string, in tensor.Shape, _ optim.Updater) (*memory.LayerReport, error) {
	out, err := m.OutputShape(in)
	if err != nil {
		return nil, err
	}
	return memory.NewBuilder(name, m.Type(), in, out).
		WorkingMemory(0, 0, 0, out.ElementsPerExample()).
		Build()
}
