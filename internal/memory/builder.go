package memory

import (
	"fmt"

	"github.com/born-ml/memplan/internal/tensor"
)

// Builder assembles a LayerReport.
//
// Identity is required; every measurement group is optional and defaults to
// zero for every cache mode. A Builder is not safe for concurrent use, but it
// may be reused after Build: the report keeps its own copy of every value.
//
// Example:
//
//	report, err := memory.NewBuilder("dense1", "Linear", tensor.FeedForward(784), tensor.FeedForward(128)).
//	    StandardMemory(100480, 200960).
//	    WorkingMemory(0, 0, 0, 128).
//	    Build()
type Builder struct {
	name       string
	layerType  string
	inputType  Shape
	outputType Shape

	parameterCount    uint64
	updaterStateCount uint64

	workingFixedInference    uint64
	workingVariableInference uint64
	workingFixedTrain        map[CacheMode]uint64
	workingVariableTrain     map[CacheMode]uint64

	cacheFixed       map[CacheMode]uint64
	cacheVariablePer map[CacheMode]uint64
}

// NewBuilder starts a report for the named layer.
//
// Parameters:
//   - name: Display name of the layer (e.g. "conv1")
//   - layerType: Type tag of the layer (e.g. "Conv2D")
//   - in: Per-example input shape
//   - out: Per-example output shape
func NewBuilder(name, layerType string, in, out Shape) *Builder {
	return &Builder{
		name:       name,
		layerType:  layerType,
		inputType:  in,
		outputType: out,
	}
}

// StandardMemory sets the parameter and updater state element counts.
func (b *Builder) StandardMemory(parameterCount, updaterStateCount uint64) *Builder {
	b.parameterCount = parameterCount
	b.updaterStateCount = updaterStateCount
	return b
}

// WorkingMemory sets working memory whose training cost does not depend on the
// cache mode. fixedTrain and variableTrainPerEx apply to every cache mode.
func (b *Builder) WorkingMemory(fixedInference, variableInferencePerEx, fixedTrain, variableTrainPerEx uint64) *Builder {
	return b.WorkingMemoryByCacheMode(fixedInference, variableInferencePerEx,
		ForAllCacheModes(fixedTrain), ForAllCacheModes(variableTrainPerEx))
}

// WorkingMemoryByCacheMode sets working memory with an explicit training value
// per cache mode. Build fails if either mapping misses a cache mode; a nil
// mapping means zero for every cache mode.
func (b *Builder) WorkingMemoryByCacheMode(
	fixedInference, variableInferencePerEx uint64,
	fixedTrain, variableTrainPerEx map[CacheMode]uint64,
) *Builder {
	b.workingFixedInference = fixedInference
	b.workingVariableInference = variableInferencePerEx
	b.workingFixedTrain = fixedTrain
	b.workingVariableTrain = variableTrainPerEx
	return b
}

// CacheMemory sets cached memory that is the same for every cache mode.
func (b *Builder) CacheMemory(fixed, variablePerEx uint64) *Builder {
	return b.CacheMemoryByCacheMode(ForAllCacheModes(fixed), ForAllCacheModes(variablePerEx))
}

// CacheMemoryByCacheMode sets cached memory per cache mode.
// Build fails if either mapping misses a cache mode.
func (b *Builder) CacheMemoryByCacheMode(fixed, variablePerEx map[CacheMode]uint64) *Builder {
	b.cacheFixed = fixed
	b.cacheVariablePer = variablePerEx
	return b
}

// Build validates the collected values and returns an immutable report.
func (b *Builder) Build() (*LayerReport, error) {
	switch {
	case b.name == "":
		return nil, fmt.Errorf("%w: empty layer name", ErrMissingIdentity)
	case b.layerType == "":
		return nil, fmt.Errorf("%w: layer %q: empty layer type", ErrMissingIdentity, b.name)
	case b.inputType == nil:
		return nil, fmt.Errorf("%w: layer %q: nil input shape", ErrMissingIdentity, b.name)
	case b.outputType == nil:
		return nil, fmt.Errorf("%w: layer %q: nil output shape", ErrMissingIdentity, b.name)
	}
	if err := validateShape(b.inputType); err != nil {
		return nil, fmt.Errorf("layer %q: input shape: %w", b.name, err)
	}
	if err := validateShape(b.outputType); err != nil {
		return nil, fmt.Errorf("layer %q: output shape: %w", b.name, err)
	}
	switch {
	case b.inputType.ElementsPerExample() == 0:
		return nil, fmt.Errorf("%w: layer %q: empty input shape", ErrMissingIdentity, b.name)
	case b.outputType.ElementsPerExample() == 0:
		return nil, fmt.Errorf("%w: layer %q: empty output shape", ErrMissingIdentity, b.name)
	}

	r := &LayerReport{
		name:                     b.name,
		layerType:                b.layerType,
		inputType:                snapshotShape(b.inputType),
		outputType:               snapshotShape(b.outputType),
		inputElements:            b.inputType.ElementsPerExample(),
		outputElements:           b.outputType.ElementsPerExample(),
		parameterCount:           b.parameterCount,
		updaterStateCount:        b.updaterStateCount,
		workingFixedInference:    b.workingFixedInference,
		workingVariableInference: b.workingVariableInference,
	}

	fields := []struct {
		name string
		src  map[CacheMode]uint64
		dst  *perCacheMode
	}{
		{"working_fixed_train", b.workingFixedTrain, &r.workingFixedTrain},
		{"working_variable_train", b.workingVariableTrain, &r.workingVariableTrain},
		{"cache_fixed", b.cacheFixed, &r.cacheFixed},
		{"cache_variable", b.cacheVariablePer, &r.cacheVariablePer},
	}
	for _, f := range fields {
		// An unset group is zero for every cache mode.
		if f.src == nil {
			continue
		}
		for _, c := range CacheModes() {
			v, ok := f.src[c]
			if !ok {
				return nil, &CacheModeError{Layer: b.name, Field: f.name, CacheMode: c}
			}
			f.dst[c] = v
		}
	}

	return r, nil
}

// validateShape runs the shape's own Validate method when it has one.
func validateShape(s Shape) error {
	if v, ok := s.(interface{ Validate() error }); ok {
		return v.Validate()
	}
	return nil
}

// snapshotShape copies shapes backed by mutable storage. Other Shape
// implementations are expected to be immutable.
func snapshotShape(s Shape) Shape {
	if c, ok := s.(interface{ Clone() tensor.Shape }); ok {
		return c.Clone()
	}
	return s
}
