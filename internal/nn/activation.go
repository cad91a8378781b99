package nn

import (
	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

// Activation is an element-wise activation function.
//
// Activations have no parameters and preserve the input shape.
type Activation struct {
	name string
}

// NewReLU creates a ReLU activation: f(x) = max(0, x).
func NewReLU() *Activation { return &Activation{name: "ReLU"} }

// NewSigmoid creates a Sigmoid activation: f(x) = 1 / (1 + exp(-x)).
func NewSigmoid() *Activation { return &Activation{name: "Sigmoid"} }

// NewTanh creates a Tanh activation.
func NewTanh() *Activation { return &Activation{name: "Tanh"} }

// NewSiLU creates a SiLU (swish) activation: f(x) = x * sigmoid(x).
func NewSiLU() *Activation { return &Activation{name: "SiLU"} }

// Type returns the activation name, e.g. "ReLU".
func (a *Activation) Type() string { return a.name }

// OutputShape returns in.
func (a *Activation) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if err := checkInput(a.name, in, 0, 0); err != nil {
		return nil, err
	}
	return in.Clone(), nil
}

// MemoryReport returns the memory report of the layer.
func (a *Activation) MemoryReport(name string, in tensor.Shape, _ optim.Updater) (*memory.LayerReport, error) {
	out, err := a.OutputShape(in)
	if err != nil {
		return nil, err
	}
	return memory.NewBuilder(name, a.Type(), in, out).Build()
}
