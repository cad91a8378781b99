package memory

import (
	"fmt"

	"github.com/born-ml/memplan/internal/tensor"
)

// perCacheMode holds one measurement for every cache mode, indexed by CacheMode.
type perCacheMode [NumCacheModes]uint64

// LayerReport is the memory estimate of a single layer.
//
// All measurements are element counts; bytes are computed at query time.
// A LayerReport is immutable once built and safe for concurrent use.
//
// Byte formulas, for minibatch N and element width W:
//
//	category              inference                training
//	parameters            params*W                 params*W
//	parameter_gradients   0                        params*W
//	activations           N*out*W                  N*out*W
//	activation_gradients  0                        N*in*W
//	updater_state         0                        updater*W
//	working_fixed         workFixedInf*W           workFixedTrain[c]*W
//	working_variable      N*workVarInf*W           N*workVarTrain[c]*W
//	cached_fixed          0                        cacheFixed[c]*W
//	cached_variable       0                        N*cacheVar[c]*W
//
// Activation gradients are the gradients this layer passes to the layer below,
// so they are sized by the input, not the output.
type LayerReport struct {
	name       string
	layerType  string
	inputType  Shape
	outputType Shape

	// Element counts captured at Build time.
	inputElements  uint64
	outputElements uint64

	parameterCount    uint64
	updaterStateCount uint64

	// Working memory may be reduced by caching, which applies to training only.
	workingFixedInference    uint64
	workingVariableInference uint64
	workingFixedTrain        perCacheMode
	workingVariableTrain     perCacheMode

	cacheFixed       perCacheMode
	cacheVariablePer perCacheMode
}

// Name returns the layer name.
func (r *LayerReport) Name() string { return r.name }

// Type returns the layer type tag.
func (r *LayerReport) Type() string { return r.layerType }

// InputShape returns the layer input shape.
func (r *LayerReport) InputShape() Shape { return r.inputType }

// OutputShape returns the layer output shape.
func (r *LayerReport) OutputShape() Shape { return r.outputType }

// ParameterCount returns the number of trainable parameters.
func (r *LayerReport) ParameterCount() uint64 { return r.parameterCount }

// UpdaterStateCount returns the number of optimizer state elements.
func (r *LayerReport) UpdaterStateCount() uint64 { return r.updaterStateCount }

// WorkingFixedInference returns the fixed inference working memory in elements.
func (r *LayerReport) WorkingFixedInference() uint64 { return r.workingFixedInference }

// WorkingVariableInference returns the inference working memory per example in elements.
func (r *LayerReport) WorkingVariableInference() uint64 { return r.workingVariableInference }

// WorkingFixedTrain returns the fixed training working memory for c, in elements.
func (r *LayerReport) WorkingFixedTrain(c CacheMode) (uint64, error) {
	return r.lookup(&r.workingFixedTrain, "working_fixed_train", c)
}

// WorkingVariableTrain returns the training working memory per example for c, in elements.
func (r *LayerReport) WorkingVariableTrain(c CacheMode) (uint64, error) {
	return r.lookup(&r.workingVariableTrain, "working_variable_train", c)
}

// CacheFixed returns the fixed cached memory for c, in elements.
func (r *LayerReport) CacheFixed(c CacheMode) (uint64, error) {
	return r.lookup(&r.cacheFixed, "cache_fixed", c)
}

// CacheVariablePerExample returns the cached memory per example for c, in elements.
func (r *LayerReport) CacheVariablePerExample(c CacheMode) (uint64, error) {
	return r.lookup(&r.cacheVariablePer, "cache_variable", c)
}

func (r *LayerReport) lookup(m *perCacheMode, field string, c CacheMode) (uint64, error) {
	if !c.Valid() {
		return 0, fmt.Errorf("layer %q: %s: %w: %v", r.name, field, ErrInvalidCacheMode, c)
	}
	return m[c], nil
}

// Bytes returns the memory used by category c.
//
// Bytes panics if c is not a declared Category.
func (r *LayerReport) Bytes(c Category, minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error) {
	width, err := validateQuery(minibatch, mode, cache, dt)
	if err != nil {
		return 0, fmt.Errorf("layer %q: %w", r.name, err)
	}
	n := uint64(minibatch)
	train := mode == Training

	var b uint64
	switch c {
	case Parameters:
		b, err = mul(r.parameterCount, width)
	case ParameterGradients:
		if !train {
			return 0, nil
		}
		b, err = mul(r.parameterCount, width)
	case Activations:
		b, err = mul(n, r.outputElements, width)
	case ActivationGradients:
		if !train {
			return 0, nil
		}
		b, err = mul(n, r.inputElements, width)
	case UpdaterState:
		if !train {
			return 0, nil
		}
		b, err = mul(r.updaterStateCount, width)
	case WorkingFixed:
		if !train {
			b, err = mul(r.workingFixedInference, width)
			break
		}
		b, err = mul(r.workingFixedTrain[cache], width)
	case WorkingVariable:
		if !train {
			b, err = mul(n, r.workingVariableInference, width)
			break
		}
		b, err = mul(n, r.workingVariableTrain[cache], width)
	case CachedFixed:
		if !train {
			return 0, nil
		}
		b, err = mul(r.cacheFixed[cache], width)
	case CachedVariable:
		if !train {
			return 0, nil
		}
		b, err = mul(n, r.cacheVariablePer[cache], width)
	default:
		panic(fmt.Sprintf("memory: unknown category %v", c))
	}
	if err != nil {
		return 0, fmt.Errorf("layer %q: %v: %w", r.name, c, err)
	}
	return b, nil
}

// TotalBytes returns the sum of Bytes over all categories.
func (r *LayerReport) TotalBytes(minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error) {
	return sumCategories(r, minibatch, mode, cache, dt)
}

// String implements fmt.Stringer.
func (r *LayerReport) String() string {
	return fmt.Sprintf("LayerReport(name=%s, type=%s)", r.name, r.layerType)
}
