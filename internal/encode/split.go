package encode

import "fmt"

// Split partitions a matrix into its first n rows and the remainder,
// the usual way a validation set is carved off an encoded batch.
// Both returned matrices are copies; the input is not aliased.
func Split[T DType](m *Matrix[T], n int) (head, tail *Matrix[T], err error) {
	if n < 0 || n > m.Rows() {
		return nil, nil, fmt.Errorf("split at %d of %d rows: %w", n, m.Rows(), ErrSplitOutOfRange)
	}

	head, err = NewMatrix[T](n, m.Cols())
	if err != nil {
		return nil, nil, err
	}
	tail, err = NewMatrix[T](m.Rows()-n, m.Cols())
	if err != nil {
		return nil, nil, err
	}

	copy(head.Data(), m.Data()[:n*m.Cols()])
	copy(tail.Data(), m.Data()[n*m.Cols():])
	return head, tail, nil
}

// SplitLabels partitions a label slice at n, mirroring Split so features
// and labels can be divided consistently.
func SplitLabels(labels []int, n int) (head, tail []int, err error) {
	if n < 0 || n > len(labels) {
		return nil, nil, fmt.Errorf("split at %d of %d labels: %w", n, len(labels), ErrSplitOutOfRange)
	}

	head = make([]int, n)
	tail = make([]int, len(labels)-n)
	copy(head, labels[:n])
	copy(tail, labels[n:])
	return head, tail, nil
}
