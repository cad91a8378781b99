package nn

import (
	"fmt"

	"github.com/born-ml/memplan/internal/memory"
	"github.com/born-ml/memplan/internal/optim"
	"github.com/born-ml/memplan/internal/tensor"
	"github.com/born-ml/memplan/internal/tokenizer"
)

// Embedding is a lookup table that maps token IDs to dense vectors.
//
// Architecture:
//   - Weight: [NumEmbed, EmbedDim] learnable parameter
//   - Input: token IDs, any shape; every element is one ID
//   - Output: [EmbedDim, num_ids]
type Embedding struct {
	NumEmbed int // Number of embeddings (vocabulary size)
	EmbedDim int // Embedding dimension (vector size)
}

// NewEmbedding creates a new Embedding layer.
func NewEmbedding(numEmbeddings, embeddingDim int) *Embedding {
	if numEmbeddings <= 0 || embeddingDim <= 0 {
		panic(fmt.Sprintf("embedding: invalid size num=%d, dim=%d", numEmbeddings, embeddingDim))
	}
	return &Embedding{NumEmbed: numEmbeddings, EmbedDim: embeddingDim}
}

// NewEmbeddingForEncoding creates an Embedding sized to the vocabulary of enc.
func NewEmbeddingForEncoding(enc *tokenizer.Encoding, embeddingDim int) *Embedding {
	return NewEmbedding(enc.VocabSize(), embeddingDim)
}

// Type returns "Embedding".
func (e *Embedding) Type() string { return "Embedding" }

// OutputShape returns [EmbedDim, num_ids].
func (e *Embedding) OutputShape(in tensor.Shape) (tensor.Shape, error) {
	if err := checkInput("embedding", in, 1, 0); err != nil {
		return nil, err
	}
	return tensor.Recurrent(e.EmbedDim, in.NumElements()), nil
}

// MemoryReport returns the memory report of the layer.
func (e *Embedding) MemoryReport(name string, in tensor.Shape, updater optim.Updater) (*memory.LayerReport, error) {
	out, err := e.OutputShape(in)
	if err != nil {
		return nil, err
	}
	params := uint64(e.NumEmbed) * uint64(e.EmbedDim) //nolint:gosec // G115: validated positive.

	return memory.NewBuilder(name, e.Type(), in, out).
		StandardMemory(params, optim.StateSize(updater, params)).
		Build()
}
