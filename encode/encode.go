// Package encode provides fixed-width feature encodings for ML pipelines.
//
// The package converts raw category-index data into dense binary matrices
// ready to feed a model:
//   - MultiHot: variable-length index sequences → binary matrix
//   - OneHot: class labels → binary matrix with one 1 per row
//   - FromPixels: byte images → float matrix rescaled to [0, 1]
//   - Split: carve a validation set off an encoded batch
//
// Every encoder is a pure function: no shared state is read or written, the
// same inputs always produce a bit-identical matrix, and concurrent calls
// are safe. Errors are returned eagerly; nothing is encoded partially.
//
// Example:
//
//	m, err := encode.MultiHot[float32]([][]int{{0, 2, 2}, {1}}, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// m.Row(0) == [1 0 1 0]
//	// m.Row(1) == [0 1 0 0]
//
// By default an index outside [0, dimension) fails the whole call with an
// *IndexError. Callers that tokenized against a larger vocabulary can opt
// into the Skip or Clamp policies instead:
//
//	cfg := encode.DefaultConfig()
//	cfg.Policy = encode.Skip
//	m, err := encode.MultiHotWithConfig[float32](sequences, 10000, cfg)
package encode

import (
	"github.com/born-ml/prep/internal/encode"
)

// DType is a constraint for supported matrix element types.
type DType = encode.DType

// Float is the floating-point subset of DType.
type Float = encode.Float

// Matrix is a dense row-major matrix of encoded features.
type Matrix[T DType] = encode.Matrix[T]

// Policy selects how encoders treat category indices outside [0, dimension).
type Policy = encode.Policy

// Supported out-of-range policies. Fail is the default; Skip and Clamp are
// opt-in and documented on their constants.
const (
	Fail  Policy = encode.Fail
	Skip  Policy = encode.Skip
	Clamp Policy = encode.Clamp
)

// Config controls encoder behavior.
type Config = encode.Config

// DefaultConfig returns the fail-fast, parallel-enabled defaults.
func DefaultConfig() Config {
	return encode.DefaultConfig()
}

// IndexError reports the offending category index under the Fail policy.
type IndexError = encode.IndexError

// Common errors.
var (
	ErrInvalidDimension = encode.ErrInvalidDimension
	ErrIndexOutOfRange  = encode.ErrIndexOutOfRange
	ErrInvalidRows      = encode.ErrInvalidRows
	ErrRaggedRows       = encode.ErrRaggedRows
	ErrUnknownWidth     = encode.ErrUnknownWidth
	ErrSplitOutOfRange  = encode.ErrSplitOutOfRange
)

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix[T DType](rows, cols int) (*Matrix[T], error) {
	return encode.NewMatrix[T](rows, cols)
}

// MultiHot encodes a batch of category-index sequences into a binary matrix
// of shape (len(sequences), dimension). Cell (i, j) is 1 iff index j occurs
// anywhere in sequences[i]; repeated indices saturate at 1.
func MultiHot[T DType](sequences [][]int, dimension int) (*Matrix[T], error) {
	return encode.MultiHot[T](sequences, dimension)
}

// MultiHotWithConfig is MultiHot with explicit policy and parallelism settings.
func MultiHotWithConfig[T DType](sequences [][]int, dimension int, cfg Config) (*Matrix[T], error) {
	return encode.MultiHotWithConfig[T](sequences, dimension, cfg)
}

// DecodeMultiHot recovers the set of present category indices per row,
// in ascending order.
func DecodeMultiHot[T DType](m *Matrix[T]) [][]int {
	return encode.DecodeMultiHot(m)
}

// OneHot encodes integer class labels into a binary matrix of shape
// (len(labels), numClasses) with exactly one 1 per row.
func OneHot[T DType](labels []int, numClasses int) (*Matrix[T], error) {
	return encode.OneHot[T](labels, numClasses)
}

// OneHotWithConfig is OneHot with explicit policy and parallelism settings.
func OneHotWithConfig[T DType](labels []int, numClasses int, cfg Config) (*Matrix[T], error) {
	return encode.OneHotWithConfig[T](labels, numClasses, cfg)
}

// DecodeOneHot recovers class labels from a one-hot (or score) matrix by
// per-row argmax. Ties resolve to the lowest index.
func DecodeOneHot[T DType](m *Matrix[T]) []int {
	return encode.DecodeOneHot(m)
}

// FromPixels converts byte images (0–255, one flattened image per row)
// into a float matrix rescaled to [0, 1].
func FromPixels[T Float](images [][]uint8) (*Matrix[T], error) {
	return encode.FromPixels[T](images)
}

// Split partitions a matrix into its first n rows and the remainder.
func Split[T DType](m *Matrix[T], n int) (head, tail *Matrix[T], err error) {
	return encode.Split(m, n)
}

// SplitLabels partitions a label slice at n, mirroring Split.
func SplitLabels(labels []int, n int) (head, tail []int, err error) {
	return encode.SplitLabels(labels, n)
}
