package encode_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/prep/encode"
)

// TestPublicAPI exercises the exported surface end to end: the round trip a
// training pipeline takes from raw sequences and labels to split batches.
func TestPublicAPI(t *testing.T) {
	sequences := [][]int{{0, 2, 2}, {1}, {3, 0}}
	labels := []int{1, 0, 1}

	features, err := encode.MultiHot[float32](sequences, 4)
	require.NoError(t, err)
	targets, err := encode.OneHot[float32](labels, 2)
	require.NoError(t, err)

	require.Equal(t, features.Rows(), targets.Rows())

	val, train, err := encode.Split(features, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, val.Rows())
	assert.Equal(t, 2, train.Rows())

	valLabels, trainLabels, err := encode.SplitLabels(labels, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, valLabels)
	assert.Equal(t, []int{0, 1}, trainLabels)

	assert.Equal(t, [][]int{{0, 2}, {1}, {0, 3}}, encode.DecodeMultiHot(features))
	assert.Equal(t, labels, encode.DecodeOneHot(targets))
}

func TestPublicAPI_PolicyViaConfig(t *testing.T) {
	cfg := encode.DefaultConfig()
	assert.Equal(t, encode.Fail, cfg.Policy)

	_, err := encode.MultiHot[float32]([][]int{{5}}, 3)
	require.ErrorIs(t, err, encode.ErrIndexOutOfRange)

	var idxErr *encode.IndexError
	require.ErrorAs(t, err, &idxErr)
	assert.Equal(t, 5, idxErr.Index)

	cfg.Policy = encode.Skip
	m, err := encode.MultiHotWithConfig[float32]([][]int{{5}}, 3, cfg)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, m.Row(0))
}

func ExampleMultiHot() {
	m, _ := encode.MultiHot[float32]([][]int{{0, 2, 2}, {1}}, 4)
	fmt.Println(m.Row(0))
	fmt.Println(m.Row(1))
	// Output:
	// [1 0 1 0]
	// [0 1 0 0]
}
