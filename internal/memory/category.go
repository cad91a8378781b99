package memory

import "fmt"

// Category is one accounting bucket of a layer's memory.
type Category int

// Memory categories.
const (
	Parameters          Category = iota // Trainable parameters.
	ParameterGradients                  // Gradients of the parameters.
	Activations                         // Layer output.
	ActivationGradients                 // Gradient passed to the layer below; sized like the input.
	UpdaterState                        // Optimizer state (momentum, moments).
	WorkingFixed                        // Scratch space independent of minibatch size.
	WorkingVariable                     // Scratch space proportional to minibatch size.
	CachedFixed                         // Retained state independent of minibatch size.
	CachedVariable                      // Retained state proportional to minibatch size.

	numCategories = iota
)

// Categories returns every category in declaration order.
func Categories() []Category {
	cs := make([]Category, numCategories)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}

// TrainingOnly reports whether the category is always zero under inference.
func (c Category) TrainingOnly() bool {
	switch c {
	case ParameterGradients, ActivationGradients, UpdaterState, CachedFixed, CachedVariable:
		return true
	default:
		return false
	}
}

// Variable reports whether the category scales with minibatch size.
func (c Category) Variable() bool {
	switch c {
	case Activations, ActivationGradients, WorkingVariable, CachedVariable:
		return true
	default:
		return false
	}
}

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Parameters:
		return "parameters"
	case ParameterGradients:
		return "parameter_gradients"
	case Activations:
		return "activations"
	case ActivationGradients:
		return "activation_gradients"
	case UpdaterState:
		return "updater_state"
	case WorkingFixed:
		return "working_fixed"
	case WorkingVariable:
		return "working_variable"
	case CachedFixed:
		return "cached_fixed"
	case CachedVariable:
		return "cached_variable"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}
