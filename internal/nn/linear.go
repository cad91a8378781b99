package nn

import (
	"fmt"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

// Linear is a fully connected (dense) layer.
//
// Performs the transformation: y = x @ W.T + b
// where:
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//
// The input's leading dimension must be in_features; any trailing dimensions
// (e.g. time steps) are carried to the output unchanged.
//
// Training keeps the pre-activation output per example as working memory.
type Linear struct {
	inFeatures  int
	outFeatures int
	useBias     bool
}

// NewLinear creates a new Linear layer with bias.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return NewLinearWithBias(inFeatures, outFeatures, true)
}

// NewLinearWithBias creates a new Linear layer, with or without bias.
func NewLinearWithBias(inFeatures, outFeatures int, useBias bool) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: invalid features in=%d, out=%d", inFeatures, outFeatures))
	}
	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		useBias:     useBias,
	}
}

// Type returns "Linear".
func (l *Linear) Type() string { return "Linear" }

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int { return l.inFeatures }

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int { return l.outFeatures }

// ParameterCount returns in*out weights plus out biases.
func (l *Linear) ParameterCount() uint64 {
	n := uint64(l.inFeatures) * uint64(l.outFeatures) //nolint:gosec // G115: validated positive.
	if l.useBias {
		n += uint64(l.outFeatures) //nolint:gosec // G115: validated positive.
	}
	return n
}

// OutputShape replaces the feature dimension with out_features.
func (l *Linear) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if err := checkInput("linear", in, 1, l.inFeatures); err != nil {
		return nil, err
	}
	out := in.Clone()
	out[0] = l.outFeatures
	return out, nil
}

// MemoryReport returns the memory report of the layer.
func (l *Linear) MemoryReport(name string, in tensor.Shape, updater optim.Updater) (*memory.LayerReport, error) {
	out, err := l.OutputShape(in)
	if err != nil {
		return nil, err
	}
	params := l.ParameterCount()

	return memory.NewBuilder(name, l.Type(), in, out).
		StandardMemory(params, optim.StateSize(updater, params)).
		WorkingMemory(0, 0, 0, out.ElementsPerExample()).
		Build()
}
