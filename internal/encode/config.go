package encode

import "github.com/born-ml/prep/internal/parallel"

// Policy selects how encoders treat category indices outside [0, dimension).
type Policy int

// Supported out-of-range policies.
const (
	// Fail aborts the whole call with an *IndexError. This is the default:
	// silently losing features tends to surface much later as a bad model.
	Fail Policy = iota
	// Skip drops out-of-range indices and encodes the rest of the row.
	// Useful when sequences were tokenized against a larger vocabulary
	// than the encoding dimension (the "keep top-N words" setup).
	Skip
	// Clamp maps out-of-range indices to the nearest edge of [0, dimension)
	// before marking. Negative indices mark column 0, overflowing indices
	// mark column dimension-1.
	Clamp
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case Fail:
		return "fail"
	case Skip:
		return "skip"
	case Clamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// Config controls encoder behavior.
type Config struct {
	Policy   Policy          // Out-of-range index handling.
	Parallel parallel.Config // Row-level parallelism.
}

// DefaultConfig returns the fail-fast, parallel-enabled defaults.
func DefaultConfig() Config {
	return Config{
		Policy:   Fail,
		Parallel: parallel.DefaultConfig(),
	}
}
