package memory

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/memplan/internal/tensor"
)

// Summary is a per-category breakdown of one report query.
type Summary struct {
	Name       string            `json:"name" yaml:"name"`
	Type       string            `json:"type" yaml:"type"`
	Minibatch  int               `json:"minibatch" yaml:"minibatch"`
	Mode       string            `json:"mode" yaml:"mode"`
	CacheMode  string            `json:"cacheMode" yaml:"cacheMode"`
	DataType   string            `json:"dataType" yaml:"dataType"`
	Categories []CategorySummary `json:"categories" yaml:"categories"`
	TotalBytes uint64            `json:"totalBytes" yaml:"totalBytes"`
}

// CategorySummary is the byte count of one category.
type CategorySummary struct {
	Category string `json:"category" yaml:"category"`
	Bytes    uint64 `json:"bytes" yaml:"bytes"`
}

// Summarize queries every category of r.
func Summarize(r Report, minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (*Summary, error) {
	s := &Summary{
		Name:      r.Name(),
		Type:      r.Type(),
		Minibatch: minibatch,
		Mode:      mode.String(),
		CacheMode: cache.String(),
		DataType:  dt.String(),
	}
	for _, c := range Categories() {
		b, err := r.Bytes(c, minibatch, mode, cache, dt)
		if err != nil {
			return nil, err
		}
		if s.TotalBytes, err = add(s.TotalBytes, b); err != nil {
			return nil, fmt.Errorf("%s: total: %w", r.Name(), err)
		}
		s.Categories = append(s.Categories, CategorySummary{Category: c.String(), Bytes: b})
	}
	return s, nil
}

// JSON encodes the summary as indented JSON.
func (s *Summary) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return data, nil
}

// YAML encodes the summary as YAML.
func (s *Summary) YAML() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return data, nil
}
