package encode

import (
	"fmt"

	"github.com/born-ml/prep/internal/parallel"
)

// OneHot encodes integer class labels into a binary matrix of shape
// (len(labels), numClasses) with exactly one 1 per row.
//
// A label is treated as a one-element sequence, so the policy surface is
// the same as MultiHot's: under the default Fail policy a label outside
// [0, numClasses) aborts the call; under Skip the row stays all-zero.
func OneHot[T DType](labels []int, numClasses int) (*Matrix[T], error) {
	return OneHotWithConfig[T](labels, numClasses, DefaultConfig())
}

// OneHotWithConfig is OneHot with explicit policy and parallelism settings.
func OneHotWithConfig[T DType](labels []int, numClasses int, cfg Config) (*Matrix[T], error) {
	if numClasses <= 0 {
		return nil, fmt.Errorf("numClasses %d: %w", numClasses, ErrInvalidDimension)
	}

	m, err := NewMatrix[T](len(labels), numClasses)
	if err != nil {
		return nil, err
	}

	rowErrs := make([]*IndexError, len(labels))
	parallel.For(len(labels), func(i int) {
		rowErrs[i] = markRow(m.Row(i), labels[i:i+1], i, numClasses, cfg.Policy)
	}, cfg.Parallel)

	for _, e := range rowErrs {
		if e != nil {
			return nil, e
		}
	}
	return m, nil
}

// DecodeOneHot recovers class labels from a one-hot (or score) matrix by
// per-row argmax. Ties resolve to the lowest index.
func DecodeOneHot[T DType](m *Matrix[T]) []int {
	labels := make([]int, m.Rows())
	for i := range labels {
		row := m.Row(i)
		best := 0
		for j := 1; j < len(row); j++ {
			if row[j] > row[best] {
				best = j
			}
		}
		labels[i] = best
	}
	return labels
}
