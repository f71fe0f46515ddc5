package encode

import "fmt"

// Matrix is a dense row-major matrix of encoded features.
// It is the output type of every encoder in this package.
type Matrix[T DType] struct {
	data []T
	rows int
	cols int
}

// NewMatrix creates a zero-filled rows×cols matrix.
//
// rows may be zero (an empty batch still has a well-defined width);
// cols must be positive.
func NewMatrix[T DType](rows, cols int) (*Matrix[T], error) {
	if rows < 0 {
		return nil, fmt.Errorf("rows %d: %w", rows, ErrInvalidRows)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("cols %d: %w", cols, ErrInvalidDimension)
	}
	return &Matrix[T]{
		data: make([]T, rows*cols),
		rows: rows,
		cols: cols,
	}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("encode: At(%d, %d) out of bounds for %d×%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns row i as a slice sharing the matrix's backing storage.
// Mutating the returned slice mutates the matrix.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("encode: Row(%d) out of bounds for %d×%d matrix", i, m.rows, m.cols))
	}
	return m.data[i*m.cols : (i+1)*m.cols]
}

// Data returns the backing slice in row-major order.
// Its length is Rows()*Cols(). Useful for feeding flat buffers to trainers.
func (m *Matrix[T]) Data() []T { return m.data }

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{data: data, rows: m.rows, cols: m.cols}
}

// Equal reports whether two matrices have the same shape and contents.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
