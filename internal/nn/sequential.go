package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/parallel"
	"github.com/born-ml/memplan/internal/tensor"
)

// Sequential chains layers: each layer's output shape is the next layer's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
//	report, err := model.MemoryReport("mlp", tensor.FeedForward(784), optim.NewAdam(optim.AdamConfig{}), parallel.DefaultConfig())
type Sequential struct {
	layers []Layer
}

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{layers: layers}
}

// Add appends a layer.
func (s *Sequential) Add(l Layer) {
	s.layers = append(s.layers, l)
}

// Len returns the number of layers.
func (s *Sequential) Len() int { return len(s.layers) }

// Type returns "Sequential".
func (s *Sequential) Type() string { return "Sequential" }

// OutputShape returns the output shape of the last layer.
func (s *Sequential) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	shape := in
	for i, l := range s.layers {
		out, err := l.OutputShape(shape)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, l.Type(), err)
		}
		shape = out
	}
	return shape, nil
}

// MemoryReport returns the aggregate report of all layers.
//
// Layers are named "<index>_<type>", e.g. "0_linear".
func (s *Sequential) MemoryReport(name string, in tensor.Shape, updater optim.Updater, cfg parallel.Config) (*memory.NetworkReport, error) {
	reports := make([]memory.Report, 0, len(s.layers))
	shape := in
	for i, l := range s.layers {
		r, err := l.MemoryReport(fmt.Sprintf("%d_%s", i, strings.ToLower(l.Type())), shape, updater)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, l.Type(), err)
		}
		reports = append(reports, r)
		if shape, err = l.OutputShape(shape); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, l.Type(), err)
		}
	}
	return memory.NewNetworkReport(name, s.Type(), reports, cfg)
}
