package metric

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/corona10/goimagehash"
	"github.com/katalvlaran/framealign/align"
)

// ErrUnknownHashKind is returned by ParseHashKind for unrecognised names.
var ErrUnknownHashKind = errors.New("metric: unknown perceptual hash kind")

// hashBits is the width of the average, difference and perception hashes.
const hashBits = 64

// HashKind selects the perceptual hash used by Perceptual.
type HashKind int

const (
	// DifferenceHash compares adjacent pixel gradients. Fast and robust to
	// brightness shifts; the default.
	DifferenceHash HashKind = iota

	// AverageHash thresholds pixels against the frame mean.
	AverageHash

	// PerceptionHash uses a DCT of the downscaled frame. Slowest, most robust.
	PerceptionHash
)

// String returns the lower-case name accepted by ParseHashKind.
func (k HashKind) String() string {
	switch k {
	case DifferenceHash:
		return "difference"
	case AverageHash:
		return "average"
	case PerceptionHash:
		return "perception"
	default:
		return fmt.Sprintf("HashKind(%d)", int(k))
	}
}

// ParseHashKind maps "difference", "average" or "perception" to a HashKind.
func ParseHashKind(name string) (HashKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "difference":
		return DifferenceHash, nil
	case "average":
		return AverageHash, nil
	case "perception":
		return PerceptionHash, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownHashKind)
	}
}

// Compute hashes img with the selected perceptual hash.
func (k HashKind) Compute(img image.Image) (*goimagehash.ImageHash, error) {
	switch k {
	case AverageHash:
		return goimagehash.AverageHash(img)
	case PerceptionHash:
		return goimagehash.PerceptionHash(img)
	case DifferenceHash:
		return goimagehash.DifferenceHash(img)
	default:
		return nil, fmt.Errorf("%v: %w", k, ErrUnknownHashKind)
	}
}

// HashDistance returns the Hamming distance of two perceptual hashes divided
// by the hash width. Nil or incomparable hashes are maximally distant.
func HashDistance(x, y *goimagehash.ImageHash) float64 {
	if x == nil || y == nil {
		return 1
	}
	bits, err := x.Distance(y)
	if err != nil {
		return 1
	}

	return math.Min(1, float64(bits)/hashBits)
}

// Perceptual returns a metric that hashes both images on every call. Callers
// aligning long sequences should cache hashes per element and use
// HashDistance directly; the frames package does that.
func Perceptual(kind HashKind) align.Metric[image.Image] {
	return align.MetricFunc[image.Image](func(x, y image.Image) float64 {
		hx, err := kind.Compute(x)
		if err != nil {
			return 1
		}
		hy, err := kind.Compute(y)
		if err != nil {
			return 1
		}

		return HashDistance(hx, hy)
	})
}

// Pixel returns the normalised mean absolute RGBA difference of two images.
// Images whose bounds differ in size are maximally distant; offsets of the
// bounds are ignored.
// Complexity: O(W·H).
func Pixel() align.Metric[image.Image] {
	return align.MetricFunc[image.Image](pixelDistance)
}

// pixelDistance implements Pixel.
func pixelDistance(x, y image.Image) float64 {
	if x == nil || y == nil {
		if x == nil && y == nil {
			return 0
		}
		return 1
	}
	bx, by := x.Bounds(), y.Bounds()
	if bx.Dx() != by.Dx() || bx.Dy() != by.Dy() {
		return 1
	}
	if bx.Empty() {
		return 0
	}

	var (
		sum            uint64 // accumulated channel differences
		r1, g1, b1, a1 uint32
		r2, g2, b2, a2 uint32
		dx, dy         int
	)
	for dy = 0; dy < bx.Dy(); dy++ {
		for dx = 0; dx < bx.Dx(); dx++ {
			r1, g1, b1, a1 = x.At(bx.Min.X+dx, bx.Min.Y+dy).RGBA()
			r2, g2, b2, a2 = y.At(by.Min.X+dx, by.Min.Y+dy).RGBA()
			sum += absDiff(r1, r2) + absDiff(g1, g2) + absDiff(b1, b2) + absDiff(a1, a2)
		}
	}
	total := float64(bx.Dx()) * float64(bx.Dy()) * 4 * math.MaxUint16

	return float64(sum) / total
}

// absDiff returns |x − y| for 16-bit colour channels.
func absDiff(x, y uint32) uint64 {
	if x > y {
		return uint64(x - y)
	}

	return uint64(y - x)
}
