package nn

import (
	"fmt"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

// Conv2D is a 2D convolutional layer computed with im2col.
//
// Input shape:  [in_channels, height, width]
// Weight shape: [out_channels, in_channels, kernel_h, kernel_w]
// Bias shape:   [out_channels]
// Output shape: [out_channels, out_h, out_w]
//
// Where:
//
//	out_h = (height + 2*padding - kernel_h) / stride + 1
//	out_w = (width + 2*padding - kernel_w) / stride + 1
//
// The im2col buffer holds in_channels*kernel_h*kernel_w*out_h*out_w elements
// per example. Inference always treats it as working memory. In training,
// CacheNone recomputes it during the backward pass (working memory), while
// CacheHost and CacheDevice keep it from the forward pass (cached memory).
//
// Example:
//
//	conv := nn.NewConv2D(1, 6, 5, 5, 1, 0, true)
//	report, err := conv.MemoryReport("conv1", tensor.Convolutional(1, 28, 28), nil)
type Conv2D struct {
	inChannels  int
	outChannels int
	kernelSize  [2]int
	stride      int
	padding     int
	useBias     bool
}

// NewConv2D creates a new 2D convolutional layer.
//
// Parameters:
//   - inChannels: Number of input channels
//   - outChannels: Number of output channels (number of filters)
//   - kernelH, kernelW: Kernel dimensions
//   - stride: Stride for convolution (commonly 1 or 2)
//   - padding: Zero padding to apply to input (commonly 0, 1, 2)
//   - useBias: Whether to include bias term
func NewConv2D(
	inChannels, outChannels int,
	kernelH, kernelW int,
	stride, padding int,
	useBias bool,
) *Conv2D {
	if inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv2d: invalid channels in=%d, out=%d", inChannels, outChannels))
	}
	if kernelH <= 0 || kernelW <= 0 {
		panic(fmt.Sprintf("conv2d: invalid kernel size h=%d, w=%d", kernelH, kernelW))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}
	if padding < 0 {
		panic(fmt.Sprintf("conv2d: invalid padding %d", padding))
	}

	return &Conv2D{
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  [2]int{kernelH, kernelW},
		stride:      stride,
		padding:     padding,
		useBias:     useBias,
	}
}

// Type returns "Conv2D".
func (c *Conv2D) Type() string { return "Conv2D" }

// ParameterCount returns the weight count plus out_channels biases.
func (c *Conv2D) ParameterCount() uint64 {
	n := uint64(c.outChannels * c.inChannels * c.kernelSize[0] * c.kernelSize[1]) //nolint:gosec // G115: validated positive.
	if c.useBias {
		n += uint64(c.outChannels) //nolint:gosec // G115: validated positive.
	}
	return n
}

// OutputShape returns [out_channels, out_h, out_w].
func (c *Conv2D) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if err := checkInput("conv2d", in, 3, c.inChannels); err != nil {
		return nil, err
	}
	if len(in) != 3 {
		return nil, fmt.Errorf("conv2d: expected [channels, height, width] input, got %v", in)
	}
	outH := (in[1]+2*c.padding-c.kernelSize[0])/c.stride + 1
	outW := (in[2]+2*c.padding-c.kernelSize[1])/c.stride + 1
	if outH <= 0 || outW <= 0 {
		return nil, fmt.Errorf("conv2d: kernel %v larger than padded input %v", c.kernelSize, in)
	}
	return tensor.Convolutional(c.outChannels, outH, outW), nil
}

// MemoryReport returns the memory report of the layer.
func (c *Conv2D) MemoryReport(name string, in tensor.Shape, updater optim.Updater) (*memory.LayerReport, error) {
	out, err := c.OutputShape(in)
	if err != nil {
		return nil, err
	}
	params := c.ParameterCount()
	outElems := out.ElementsPerExample()
	im2col := uint64(c.inChannels*c.kernelSize[0]*c.kernelSize[1]) * uint64(out[1]*out[2]) //nolint:gosec // G115: validated positive.

	// Pre-activation output is always working memory in training.
	workingTrain := map[memory.CacheMode]uint64{
		memory.CacheNone:   im2col + outElems,
		memory.CacheHost:   outElems,
		memory.CacheDevice: outElems,
	}
	cached := map[memory.CacheMode]uint64{
		memory.CacheNone:   0,
		memory.CacheHost:   im2col,
		memory.CacheDevice: im2col,
	}

	return memory.NewBuilder(name, c.Type(), in, out).
		StandardMemory(params, optim.StateSize(updater, params)).
		WorkingMemoryByCacheMode(0, im2col, memory.ForAllCacheModes(0), workingTrain).
		CacheMemoryByCacheMode(memory.ForAllCacheModes(0), cached).
		Build()
}
