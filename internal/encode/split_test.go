package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	m, err := MultiHot[float32]([][]int{{0}, {1}, {2}, {3}}, 4)
	require.NoError(t, err)

	head, tail, err := Split(m, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, head.Rows())
	assert.Equal(t, 3, tail.Rows())
	assert.Equal(t, []float32{1, 0, 0, 0}, head.Row(0))
	assert.Equal(t, []float32{0, 1, 0, 0}, tail.Row(0))
	assert.Equal(t, []float32{0, 0, 0, 1}, tail.Row(2))
}

func TestSplit_Edges(t *testing.T) {
	m, err := MultiHot[float32]([][]int{{0}, {1}}, 2)
	require.NoError(t, err)

	head, tail, err := Split(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, head.Rows())
	assert.Equal(t, 2, tail.Rows())

	head, tail, err = Split(m, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, head.Rows())
	assert.Equal(t, 0, tail.Rows())
	assert.True(t, head.Equal(m))
}

func TestSplit_DoesNotAliasInput(t *testing.T) {
	m, err := MultiHot[float32]([][]int{{0}, {1}}, 2)
	require.NoError(t, err)

	head, _, err := Split(m, 1)
	require.NoError(t, err)

	head.Row(0)[0] = 7
	assert.Equal(t, float32(1), m.At(0, 0))
}

func TestSplit_OutOfRange(t *testing.T) {
	m, err := MultiHot[float32]([][]int{{0}}, 2)
	require.NoError(t, err)

	for _, n := range []int{-1, 2} {
		_, _, err := Split(m, n)
		assert.ErrorIs(t, err, ErrSplitOutOfRange)
	}
}

func TestSplitLabels(t *testing.T) {
	head, tail, err := SplitLabels([]int{1, 2, 3, 4}, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, head)
	assert.Equal(t, []int{4}, tail)

	_, _, err = SplitLabels([]int{1}, 5)
	assert.ErrorIs(t, err, ErrSplitOutOfRange)
}
