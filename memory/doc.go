// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package memory estimates, before execution, the memory a layer or network needs.
//
// # Overview
//
// A report breaks memory down into nine categories:
//   - Parameters, ParameterGradients, UpdaterState
//   - Activations, ActivationGradients
//   - WorkingFixed, WorkingVariable (scratch space)
//   - CachedFixed, CachedVariable (state kept for the backward pass)
//
// Measurements are element counts. Bytes depend on the query: minibatch size,
// Inference or Training mode, cache mode and data type. Under Inference every
// training-only category is zero; cache modes only matter under Training.
//
// # Basic Usage
//
//	report, err := memory.NewBuilder("fc1", "Linear", tensor.FeedForward(784), tensor.FeedForward(128)).
//	    StandardMemory(100480, 200960).
//	    WorkingMemory(0, 0, 0, 128).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bytes, err := report.TotalBytes(32, memory.Training, memory.CacheNone, tensor.Float32)
//
// # Caching
//
// Layers whose training cost depends on the cache mode supply one value per
// mode; Build rejects mappings that miss one:
//
//	b.WorkingMemoryByCacheMode(0, im2col, memory.ForAllCacheModes(0), map[memory.CacheMode]uint64{
//	    memory.CacheNone:   im2col,
//	    memory.CacheHost:   0,
//	    memory.CacheDevice: 0,
//	})
//
// # Networks
//
// NetworkReport sums layer reports and satisfies the same Report interface;
// nn.Sequential builds one from a layer stack.
package memory
