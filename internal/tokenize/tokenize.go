// Package tokenize turns raw text into category-index sequences for the
// prep encoders.
package tokenize

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// encodingCL100kBase is the encoding name for GPT-4 and GPT-3.5-turbo.
	encodingCL100kBase = "cl100k_base"
	// encodingP50kBase is the encoding name for GPT-3.
	encodingP50kBase = "p50k_base"
	// encodingR50kBase is the encoding name for older GPT-3 models.
	encodingR50kBase = "r50k_base"
)

// Tokenizer wraps the pkoukk/tiktoken-go library to produce token-index
// sequences against a fixed BPE vocabulary.
//
// Supported encodings:
//   - cl100k_base: GPT-4, GPT-3.5-turbo, text-embedding-ada-002
//   - p50k_base: GPT-3, Codex
//   - r50k_base: GPT-3, davinci-002, babbage-002
type Tokenizer struct {
	encoding *tiktoken.Tiktoken
	name     string
}

// New creates a Tokenizer with the specified encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func New(encodingName string) (*Tokenizer, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	return &Tokenizer{
		encoding: encoding,
		name:     encodingName,
	}, nil
}

// NewForModel creates a Tokenizer for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewForModel(modelName string) (*Tokenizer, error) {
	encoding, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken for model %q: %w", modelName, err)
	}

	return &Tokenizer{
		encoding: encoding,
		name:     modelName,
	}, nil
}

// Sequence converts one text into its token-index sequence.
func (t *Tokenizer) Sequence(text string) []int {
	return t.encoding.Encode(text, nil, nil)
}

// Sequences converts a batch of texts into token-index sequences,
// one per text, ready for the multi-hot encoder.
func (t *Tokenizer) Sequences(texts []string) [][]int {
	sequences := make([][]int, len(texts))
	for i, text := range texts {
		sequences[i] = t.Sequence(text)
	}
	return sequences
}

// Decode converts a token-index sequence back to text.
func (t *Tokenizer) Decode(tokens []int) string {
	return t.encoding.Decode(tokens)
}

// VocabSize returns the total vocabulary size.
func (t *Tokenizer) VocabSize() int {
	// tiktoken-go doesn't expose vocab size directly.
	switch t.name {
	case encodingCL100kBase:
		return 100256 // Actual vocab size for cl100k_base
	case encodingP50kBase, encodingR50kBase:
		return 50257 // Actual vocab size for p50k_base
	default:
		return 100000 // Conservative default
	}
}

// Name returns the tokenizer name.
func (t *Tokenizer) Name() string {
	return t.name
}

// CapVocab drops every index outside [0, dimension) from the sequences,
// the "keep the top-N words" trim applied before multi-hot encoding against
// a smaller dimension than the tokenizer's vocabulary. The result always
// encodes cleanly under the Fail policy. Input is not modified.
func CapVocab(sequences [][]int, dimension int) [][]int {
	capped := make([][]int, len(sequences))
	for i, seq := range sequences {
		kept := make([]int, 0, len(seq))
		for _, idx := range seq {
			if idx >= 0 && idx < dimension {
				kept = append(kept, idx)
			}
		}
		capped[i] = kept
	}
	return capped
}
