package nn

import (
	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
)

// Flatten reshapes an example into a flat feature vector. It has no
// parameters and no working memory.
type Flatten struct{}

// NewFlatten creates a new Flatten layer.
func NewFlatten() *Flatten { return &Flatten{} }

// Type returns "Flatten".
func (f *Flatten) Type() string { return "Flatten" }

// OutputShape returns [elements(in)].
func (f *Flatten) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if err := checkInput("flatten", in, 0, 0); err != nil {
		return nil, err
	}
	return tensor.FeedForward(in.NumElements()), nil
}

// MemoryReport returns the memory report of the layer.
func (f *Flatten) MemoryReport(name string, in tensor.Shape, _ optim.Updater) (*memory.LayerReport, error) {
	out, err := f.OutputShape(in)
	if err != nil {
		return nil, err
	}
	return memory.NewBuilder(name, f.Type(), in, out).Build()
}
