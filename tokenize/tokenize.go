// Package tokenize turns raw text into category-index sequences for the
// prep encoders.
//
// This package wraps the internal tokenizer implementation and provides a
// clean public API for producing encoder input from text.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/prep/encode"
//	    "github.com/born-ml/prep/tokenize"
//	)
//
//	tok, err := tokenize.New("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sequences := tok.Sequences([]string{"great movie", "terrible movie"})
//
//	// Keep only the 10,000 most common token indices, then encode.
//	sequences = tokenize.CapVocab(sequences, 10000)
//	features, err := encode.MultiHot[float32](sequences, 10000)
package tokenize

import (
	"github.com/born-ml/prep/internal/tokenize"
)

// Tokenizer converts text to token-index sequences against a fixed
// BPE vocabulary.
type Tokenizer = tokenize.Tokenizer

// New creates a Tokenizer with the specified encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func New(encodingName string) (*Tokenizer, error) {
	return tokenize.New(encodingName)
}

// NewForModel creates a Tokenizer for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewForModel(modelName string) (*Tokenizer, error) {
	return tokenize.NewForModel(modelName)
}

// CapVocab drops every index >= dimension from the sequences, so they can
// be multi-hot encoded against a dimension smaller than the tokenizer's
// vocabulary.
func CapVocab(sequences [][]int, dimension int) [][]int {
	return tokenize.CapVocab(sequences, dimension)
}
