// Package encode provides the core feature encoders for the prep library.
package encode

// DType is a constraint for supported matrix element types.
// It covers the numeric types models consume as input.
type DType interface {
	~float32 | ~float64 | ~uint8
}

// Float is the floating-point subset of DType, for transforms whose
// results are fractional (pixel rescaling).
type Float interface {
	~float32 | ~float64
}
