// Package tokenizer sizes token vocabularies and sequences for embedding planning.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// vocabSizes maps each supported encoding to its token ID count, special tokens included.
// tiktoken-go doesn't expose vocab size directly.
var vocabSizes = map[string]int{
	"cl100k_base": 100277, // GPT-4, GPT-3.5-turbo
	"o200k_base":  200019, // GPT-4o
	"p50k_base":   50281,  // GPT-3 (text-davinci-002/003)
	"r50k_base":   50257,  // Older GPT-3
}

// Encoding wraps a tiktoken BPE encoding.
type Encoding struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// NewEncoding loads the named tiktoken encoding.
//
// Supported encodings: "cl100k_base", "o200k_base", "p50k_base", "r50k_base".
func NewEncoding(name string) (*Encoding, error) {
	if _, ok := vocabSizes[name]; !ok {
		return nil, fmt.Errorf("unsupported tiktoken encoding %q", name)
	}
	enc, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", name, err)
	}
	return &Encoding{encoding: enc, name: name}, nil
}

// NewEncodingForModel loads the encoding used by a model such as "gpt-4o-mini".
func NewEncodingForModel(model string) (*Encoding, error) {
	name, err := EncodingNameForModel(model)
	if err != nil {
		return nil, err
	}
	return NewEncoding(name)
}

// EncodingNameForModel resolves a model name to its encoding name.
//
// Exact model names win; otherwise the longest matching model prefix
// (e.g. "gpt-4o-") decides.
func EncodingNameForModel(model string) (string, error) {
	if name, ok := tiktoken.MODEL_TO_ENCODING[model]; ok {
		return name, nil
	}
	var best, name string
	for prefix, enc := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best, name = prefix, enc
		}
	}
	if name == "" {
		return "", fmt.Errorf("no tiktoken encoding for model %q", model)
	}
	return name, nil
}

// Name returns the encoding name, e.g. "cl100k_base".
func (e *Encoding) Name() string {
	return e.name
}

// VocabSize returns the number of token IDs, special tokens included.
func (e *Encoding) VocabSize() int {
	return vocabSizes[e.name]
}

// CountTokens returns the number of tokens text encodes to.
// Special-token text is encoded as ordinary text.
func (e *Encoding) CountTokens(text string) int {
	return len(e.encoding.Encode(text, nil, nil))
}
