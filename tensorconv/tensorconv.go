// Package tensorconv converts prep matrices to and from gorgonia dense
// tensors, so encoded batches can be handed straight to gorgonia-based
// trainers.
package tensorconv

import (
	"errors"
	"fmt"

	"gorgonia.org/tensor"

	"github.com/born-ml/prep/encode"
)

// Common errors.
var (
	ErrEmptyMatrix   = errors.New("matrix has no rows")
	ErrNotMatrix     = errors.New("tensor is not 2-dimensional")
	ErrDTypeMismatch = errors.New("tensor backing type does not match requested element type")
)

// Dense copies a matrix into a freshly backed gorgonia *tensor.Dense of the
// same shape. The matrix is not aliased; mutating one side never affects
// the other.
//
// Zero-row matrices are rejected: gorgonia shapes cannot carry an empty
// leading dimension.
func Dense[T encode.DType](m *encode.Matrix[T]) (*tensor.Dense, error) {
	if m.Rows() == 0 {
		return nil, ErrEmptyMatrix
	}

	backing := make([]T, len(m.Data()))
	copy(backing, m.Data())
	return tensor.New(tensor.WithShape(m.Rows(), m.Cols()), tensor.WithBacking(backing)), nil
}

// FromDense copies a 2-dimensional gorgonia tensor into a prep matrix.
// The tensor's backing type must be []T.
func FromDense[T encode.DType](d *tensor.Dense) (*encode.Matrix[T], error) {
	shape := d.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("shape %v: %w", shape, ErrNotMatrix)
	}

	data, ok := d.Data().([]T)
	if !ok {
		return nil, fmt.Errorf("backing type %T: %w", d.Data(), ErrDTypeMismatch)
	}

	m, err := encode.NewMatrix[T](shape[0], shape[1])
	if err != nil {
		return nil, err
	}
	copy(m.Data(), data)
	return m, nil
}
