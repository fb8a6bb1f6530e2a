package metric

import (
	"math"

	"github.com/katalvlaran/framealign/align"
)

// Equal returns the identity metric: 0 when x == y, 1 otherwise.
func Equal[T comparable]() align.Metric[T] {
	return align.MetricFunc[T](func(x, y T) float64 {
		if x == y {
			return 0
		}
		return 1
	})
}

// Bytes returns the normalised mean absolute difference of two byte slices.
// Slices of different length are maximally distant.
// Complexity: O(len(x)).
func Bytes() align.Metric[[]byte] {
	return align.MetricFunc[[]byte](func(x, y []byte) float64 {
		if len(x) != len(y) {
			return 1
		}
		if len(x) == 0 {
			return 0
		}
		var sum uint64
		for i := range x {
			if x[i] > y[i] {
				sum += uint64(x[i] - y[i])
			} else {
				sum += uint64(y[i] - x[i])
			}
		}

		return float64(sum) / (float64(len(x)) * math.MaxUint8)
	})
}

// Clamp wraps m so that NaN and out-of-range distances are forced into
// [0,1]. NaN maps to 1.
func Clamp[T any](m align.Metric[T]) align.Metric[T] {
	return align.MetricFunc[T](func(x, y T) float64 {
		d := m.Distance(x, y)
		switch {
		case math.IsNaN(d), d > 1:
			return 1
		case d < 0:
			return 0
		default:
			return d
		}
	})
}
