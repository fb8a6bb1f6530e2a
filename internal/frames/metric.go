package frames

import (
	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/metric"
)

// PixelMetric compares the decoded images of two frames with metric.Pixel.
// A frame that fails to decode is maximally distant from everything.
// Complexity: O(W·H) per call; decoding happens once per frame.
func PixelMetric() align.Metric[*Frame] {
	px := metric.Pixel()

	return align.MetricFunc[*Frame](func(x, y *Frame) float64 {
		ix, err := x.Image()
		if err != nil {
			return 1
		}
		iy, err := y.Image()
		if err != nil {
			return 1
		}

		return px.Distance(ix, iy)
	})
}

// PerceptualMetric compares the cached perceptual hashes of two frames.
// Complexity: O(1) per call once both hashes exist.
func PerceptualMetric(kind metric.HashKind) align.Metric[*Frame] {
	return align.MetricFunc[*Frame](func(x, y *Frame) float64 {
		hx, err := x.PerceptualHash(kind)
		if err != nil {
			return 1
		}
		hy, err := y.PerceptualHash(kind)
		if err != nil {
			return 1
		}

		return metric.HashDistance(hx, hy)
	})
}
