// Package nn estimates the memory of neural network layers from their hyperparameters.
//
// Every layer implements Layer: it infers its output shape and reports its
// parameter, working and cached memory as element counts through a
// memory.Builder.
package nn

import (
	"fmt"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

// Layer is the base interface for all layers that can be planned.
//
// Layers are composed with Sequential:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
type Layer interface {
	// Type returns the layer type tag, e.g. "Linear".
	Type() string

	// OutputShape returns the per-example output shape for input shape in.
	OutputShape(in tensor.Shape) (tensor.Shape, error)

	// MemoryReport returns the memory report of the layer for input shape in.
	//
	// updater sizes the optimizer state; nil means no optimizer state.
	MemoryReport(name string, in tensor.Shape, updater optim.Updater) (*memory.LayerReport, error)
}

// checkInput validates in and its leading (feature or channel) dimension.
func checkInput(layer string, in tensor.Shape, minRank, features int) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("%s: %w", layer, err)
	}
	if len(in) < minRank {
		return fmt.Errorf("%s: expected input of rank >= %d, got shape %v", layer, minRank, in)
	}
	if features > 0 && in[0] != features {
		return fmt.Errorf("%s: expected %d input features, got shape %v", layer, features, in)
	}
	return nil
}

// positions returns the number of feature vectors in one example,
// e.g. the time steps of a recurrent input.
func positions(in tensor.Shape) uint64 {
	if len(in) <= 1 {
		return 1
	}
	return tensor.Shape(in[1:]).ElementsPerExample()
}
