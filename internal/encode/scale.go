package encode

import "fmt"

// FromPixels converts byte images (values 0–255, one flattened image per
// row) into a float matrix rescaled to [0, 1]. This is the usual
// pixel/255 preparation step before handing images to a dense network.
//
// All rows must share the same width; width is taken from the first row.
// An empty outer slice is rejected because the matrix width cannot be
// inferred from it.
func FromPixels[T Float](images [][]uint8) (*Matrix[T], error) {
	if len(images) == 0 {
		return nil, ErrUnknownWidth
	}
	width := len(images[0])

	m, err := NewMatrix[T](len(images), width)
	if err != nil {
		return nil, err
	}

	for i, img := range images {
		if len(img) != width {
			return nil, fmt.Errorf("row %d has width %d, row 0 has width %d: %w",
				i, len(img), width, ErrRaggedRows)
		}
		row := m.Row(i)
		for j, v := range img {
			row[j] = T(v) / 255
		}
	}
	return m, nil
}
