// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package memory

import (
	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/parallel"
	"github.com/born-ml/memplan/tensor"
)

// Report is the query surface shared by layer and network reports.
type Report = memory.Report

// Shape is the per-example size of a layer input or output.
type Shape = memory.Shape

// LayerReport is the memory estimate of a single layer.
type LayerReport = memory.LayerReport

// NetworkReport aggregates layer reports.
type NetworkReport = memory.NetworkReport

// Builder assembles a LayerReport.
type Builder = memory.Builder

// Summary is a per-category breakdown of one query.
type Summary = memory.Summary

// CategorySummary is the byte count of one category.
type CategorySummary = memory.CategorySummary

// CacheModeError reports a per-cache-mode measurement that lacks an entry.
type CacheModeError = memory.CacheModeError

// Category is one accounting bucket of a layer's memory.
type Category = memory.Category

// Memory categories.
const (
	Parameters          Category = memory.Parameters
	ParameterGradients  Category = memory.ParameterGradients
	Activations         Category = memory.Activations
	ActivationGradients Category = memory.ActivationGradients
	UpdaterState        Category = memory.UpdaterState
	WorkingFixed        Category = memory.WorkingFixed
	WorkingVariable     Category = memory.WorkingVariable
	CachedFixed         Category = memory.CachedFixed
	CachedVariable      Category = memory.CachedVariable
)

// Mode selects inference or training.
type Mode = memory.Mode

// Execution modes.
const (
	Inference Mode = memory.Inference
	Training  Mode = memory.Training
)

// CacheMode selects how much state a layer keeps between passes in training.
type CacheMode = memory.CacheMode

// Cache modes.
const (
	CacheNone   CacheMode = memory.CacheNone
	CacheHost   CacheMode = memory.CacheHost
	CacheDevice CacheMode = memory.CacheDevice

	NumCacheModes = memory.NumCacheModes
)

// Errors.
var (
	ErrMissingIdentity  = memory.ErrMissingIdentity
	ErrMissingCacheMode = memory.ErrMissingCacheMode
	ErrInvalidMinibatch = memory.ErrInvalidMinibatch
	ErrInvalidMode      = memory.ErrInvalidMode
	ErrInvalidCacheMode = memory.ErrInvalidCacheMode
	ErrInvalidDataType  = memory.ErrInvalidDataType
	ErrOverflow         = memory.ErrOverflow
)

// Categories returns every category in declaration order.
func Categories() []Category { return memory.Categories() }

// CacheModes returns every cache mode in declaration order.
func CacheModes() []CacheMode { return memory.CacheModes() }

// ForAllCacheModes returns a mapping that assigns v to every cache mode.
func ForAllCacheModes(v uint64) map[CacheMode]uint64 { return memory.ForAllCacheModes(v) }

// ParseMode converts "inference" or "training" into a Mode.
func ParseMode(s string) (Mode, error) { return memory.ParseMode(s) }

// ParseCacheMode converts "none", "host" or "device" into a CacheMode.
func ParseCacheMode(s string) (CacheMode, error) { return memory.ParseCacheMode(s) }

// NewBuilder starts a report for the named layer.
func NewBuilder(name, layerType string, in, out Shape) *Builder {
	return memory.NewBuilder(name, layerType, in, out)
}

// NewNetworkReport returns an aggregate of layers using the default parallel configuration.
func NewNetworkReport(name, networkType string, layers []Report) (*NetworkReport, error) {
	return memory.NewNetworkReport(name, networkType, layers, parallel.DefaultConfig())
}

// Summarize queries every category of r.
func Summarize(r Report, minibatch int, mode Mode, cache CacheMode, dt tensor.DataType) (*Summary, error) {
	return memory.Summarize(r, minibatch, mode, cache, dt)
}
