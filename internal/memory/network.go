package memory

import (
	"fmt"
	"slices"

	"github.com/born-ml/memplan/internal/parallel"
	"github.com/born-ml/memplan/internal/tensor"
)

// NetworkReport aggregates the reports of a network's layers.
//
// Each category is the sum of that category over all layers. Member reports
// are queried concurrently when the network is large enough for cfg.
type NetworkReport struct {
	name        string
	networkType string
	layers      []Report
	cfg         parallel.Config
}

// NewNetworkReport returns an aggregate of layers.
// The layer slice is copied.
func NewNetworkReport(name, networkType string, layers []Report, cfg parallel.Config) (*NetworkReport, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty network name", ErrMissingIdentity)
	}
	if networkType == "" {
		return nil, fmt.Errorf("%w: network %q: empty network type", ErrMissingIdentity, name)
	}
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("%w: network %q: nil report at index %d", ErrMissingIdentity, name, i)
		}
	}
	return &NetworkReport{
		name:        name,
		networkType: networkType,
		layers:      slices.Clone(layers),
		cfg:         cfg,
	}, nil
}

// Name returns the network name.
func (n *NetworkReport) Name() string { return n.name }

// Type returns the network type tag.
func (n *NetworkReport) Type() string { return n.networkType }

// Layers returns a copy of the member reports.
func (n *NetworkReport) Layers() []Report { return slices.Clone(n.layers) }

// Bytes returns the sum of category c over all layers.
func (n *NetworkReport) Bytes(c Category, minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error) {
	if _, err := validateQuery(minibatch, mode, cache, dt); err != nil {
		return 0, fmt.Errorf("network %q: %w", n.name, err)
	}
	total, err := parallel.Sum(len(n.layers), func(i int) (uint64, error) {
		return n.layers[i].Bytes(c, minibatch, mode, cache, dt)
	}, ErrOverflow, n.cfg)
	if err != nil {
		return 0, fmt.Errorf("network %q: %w", n.name, err)
	}
	return total, nil
}

// TotalBytes returns the sum of Bytes over all categories.
func (n *NetworkReport) TotalBytes(minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (uint64, error) {
	return sumCategories(n, minibatch, mode, cache, dt)
}

// String implements fmt.Stringer.
func (n *NetworkReport) String() string {
	return fmt.Sprintf("NetworkReport(name=%s, type=%s, layers=%d)", n.name, n.networkType, len(n.layers))
}
