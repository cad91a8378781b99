package main

import (
	"fmt"
	"strings"

	"github.com/born-ml/memplan/internal/nn"
	"github.com/born-ml/memplan/internal/tensor"
	"github.com/born-ml/memplan/internal/tokenizer"
)

// layerConfig describes one layer from command line flags.
type layerConfig struct {
	kind     string
	in       string
	out      int
	kernel   int
	stride   int
	padding  int
	vocab    int
	encoding string
	model    string
	prompt   string
}

// build returns the layer and its input shape.
func (c layerConfig) build() (nn.Layer, tensor.Shape, error) {
	kind := strings.ToLower(c.kind)
	if kind == "embedding" {
		return c.buildEmbedding()
	}

	if c.in == "" {
		return nil, nil, fmt.Errorf("%s: -in is required", kind)
	}
	in, err := tensor.ParseShape(c.in)
	if err != nil {
		return nil, nil, err
	}

	switch kind {
	case "linear":
		if c.out <= 0 {
			return nil, nil, fmt.Errorf("linear: -out must be > 0")
		}
		return nn.NewLinear(in[0], c.out), in, nil
	case "conv2d":
		if c.out <= 0 || c.kernel <= 0 || c.stride <= 0 || c.padding < 0 {
			return nil, nil, fmt.Errorf("conv2d: invalid -out, -kernel, -stride or -padding")
		}
		return nn.NewConv2D(in[0], c.out, c.kernel, c.kernel, c.stride, c.padding, true), in, nil
	case "maxpool2d":
		if c.kernel <= 0 || c.stride <= 0 {
			return nil, nil, fmt.Errorf("maxpool2d: invalid -kernel or -stride")
		}
		return nn.NewMaxPool2D(c.kernel, c.stride), in, nil
	case "layernorm":
		return nn.NewLayerNorm(in[0], 1e-5), in, nil
	case "relu":
		return nn.NewReLU(), in, nil
	case "sigmoid":
		return nn.NewSigmoid(), in, nil
	case "tanh":
		return nn.NewTanh(), in, nil
	case "silu":
		return nn.NewSiLU(), in, nil
	default:
		return nil, nil, fmt.Errorf("unknown layer %q", c.kind)
	}
}

// buildEmbedding sizes the vocabulary from -vocab, -encoding or -model and the
// sequence length from -in or the token count of -prompt.
func (c layerConfig) buildEmbedding() (nn.Layer, tensor.Shape, error) {
	if c.out <= 0 {
		return nil, nil, fmt.Errorf("embedding: -out must be > 0")
	}

	var enc *tokenizer.Encoding
	var err error
	switch {
	case c.encoding != "" && c.model != "":
		return nil, nil, fmt.Errorf("embedding: -encoding and -model are mutually exclusive")
	case c.encoding != "":
		enc, err = tokenizer.NewEncoding(c.encoding)
	case c.model != "":
		enc, err = tokenizer.NewEncodingForModel(c.model)
	}
	if err != nil {
		return nil, nil, err
	}

	var layer *nn.Embedding
	switch {
	case c.vocab > 0:
		layer = nn.NewEmbedding(c.vocab, c.out)
	case enc != nil:
		layer = nn.NewEmbeddingForEncoding(enc, c.out)
	default:
		return nil, nil, fmt.Errorf("embedding: -vocab, -encoding or -model is required")
	}

	switch {
	case c.in != "":
		in, err := tensor.ParseShape(c.in)
		return layer, in, err
	case c.prompt != "" && enc != nil:
		n := enc.CountTokens(c.prompt)
		if n == 0 {
			return nil, nil, fmt.Errorf("embedding: prompt encodes to no tokens")
		}
		return layer, tensor.FeedForward(n), nil
	default:
		return nil, nil, fmt.Errorf("embedding: -in, or -prompt with -encoding or -model, is required")
	}
}
