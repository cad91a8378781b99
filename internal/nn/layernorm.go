package nn

import (
	"fmt"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

// LayerNorm normalizes over the feature dimension.
//
// Parameters are gamma and beta, one of each per feature. The mean and
// reciprocal standard deviation of every position are kept as working memory.
type LayerNorm struct {
	normalizedShape int
	epsilon         float32
}

// NewLayerNorm creates a new LayerNorm layer.
func NewLayerNorm(normalizedShape int, epsilon float32) *LayerNorm {
	if normalizedShape <= 0 {
		panic(fmt.Sprintf("layernorm: invalid normalized shape %d", normalizedShape))
	}
	return &LayerNorm{normalizedShape: normalizedShape, epsilon: epsilon}
}

// Type returns "LayerNorm".
func (l *LayerNorm) Type() string { return "LayerNorm" }

// OutputShape returns in.
func (l *LayerNorm) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if err := checkInput("layernorm", in, 1, l.normalizedShape); err != nil {
		return nil, err
	}
	return in.Clone(), nil
}

// MemoryReport returns the memory report of the layer.
func (l *LayerNorm) MemoryReport(name string, in tensor.Shape, updater optim.Updater) (*memory.LayerReport, error) {
	out, err := l.OutputShape(in)
	if err != nil {
		return nil, err
	}
	params := 2 * uint64(l.normalizedShape) //nolint:gosec // G115: validated positive.
	stats := 2 * positions(in)

	return memory.NewBuilder(name, l.Type(), in, out).
		StandardMemory(params, optim.StateSize(updater, params)).
		WorkingMemory(0, stats, 0, stats).
		Build()
}
