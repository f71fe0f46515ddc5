package encode

import (
	"fmt"

	"github.com/born-ml/prep/internal/parallel"
)

// MultiHot encodes a batch of category-index sequences into a binary matrix
// of shape (len(sequences), dimension). Cell (i, j) is 1 iff index j occurs
// anywhere in sequences[i]; repeated indices saturate at 1.
//
// Every index must lie in [0, dimension) under the default Fail policy; use
// MultiHotWithConfig to select Skip or Clamp instead.
//
// Cost is one rows×dimension zero-fill plus one visit per input index.
func MultiHot[T DType](sequences [][]int, dimension int) (*Matrix[T], error) {
	return MultiHotWithConfig[T](sequences, dimension, DefaultConfig())
}

// MultiHotWithConfig is MultiHot with explicit policy and parallelism settings.
//
// Rows are marked independently, so the marking pass runs in parallel for
// large batches. The call is deterministic either way: the output matrix is
// bit-identical across runs, and under Fail the reported *IndexError is
// always the offending index with the smallest (row, position).
func MultiHotWithConfig[T DType](sequences [][]int, dimension int, cfg Config) (*Matrix[T], error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("dimension %d: %w", dimension, ErrInvalidDimension)
	}

	m, err := NewMatrix[T](len(sequences), dimension)
	if err != nil {
		return nil, err
	}

	rowErrs := make([]*IndexError, len(sequences))
	parallel.For(len(sequences), func(i int) {
		rowErrs[i] = markRow(m.Row(i), sequences[i], i, dimension, cfg.Policy)
	}, cfg.Parallel)

	// First error in row order keeps Fail deterministic under parallelism.
	for _, e := range rowErrs {
		if e != nil {
			return nil, e
		}
	}
	return m, nil
}

// markRow sets row[j] = 1 for each index j in seq, applying the policy to
// out-of-range indices. Under Fail it stops at the first offender, so the
// returned error carries the smallest position in the row.
func markRow[T DType](row []T, seq []int, rowIdx, dimension int, policy Policy) *IndexError {
	for pos, idx := range seq {
		if idx < 0 || idx >= dimension {
			switch policy {
			case Skip:
				continue
			case Clamp:
				if idx < 0 {
					idx = 0
				} else {
					idx = dimension - 1
				}
			default:
				return &IndexError{Row: rowIdx, Pos: pos, Index: idx, Dimension: dimension}
			}
		}
		row[idx] = 1
	}
	return nil
}

// DecodeMultiHot recovers the set of present category indices per row,
// in ascending order. Any nonzero cell counts as set.
func DecodeMultiHot[T DType](m *Matrix[T]) [][]int {
	out := make([][]int, m.Rows())
	for i := range out {
		indices := []int{}
		for j, v := range m.Row(i) {
			if v != 0 {
				indices = append(indices, j)
			}
		}
		out[i] = indices
	}
	return out
}
