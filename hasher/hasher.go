// Package hasher provides content digests for the divide-and-conquer anchor
// search. Every hasher here returns a 32-byte SHA-256 digest.
package hasher

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"image"

	"github.com/katalvlaran/framealign/align"
)

// ErrNilImage is returned when asked to digest a nil image. Distinct nil
// images must never hash equal.
var ErrNilImage = errors.New("hasher: nil image")

// Size is the length in bytes of every digest produced by this package.
const Size = sha256.Size

// Bytes hashes raw byte slices.
func Bytes() align.Hasher[[]byte] {
	return align.HasherFunc[[]byte](func(x []byte) ([]byte, error) {
		sum := sha256.Sum256(x)
		return sum[:], nil
	})
}

// String hashes strings by their UTF-8 bytes.
func String() align.Hasher[string] {
	return align.HasherFunc[string](func(x string) ([]byte, error) {
		sum := sha256.Sum256([]byte(x))
		return sum[:], nil
	})
}

// Image hashes the decoded pixels of an image: its size followed by the
// 16-bit RGBA value of every pixel in row-major order. Two files holding the
// same pixels in different containers hash equal; bounds offsets are ignored.
// Complexity: O(W·H).
func Image() align.Hasher[image.Image] {
	return align.HasherFunc[image.Image](ImageDigest)
}

// ImageDigest is the function behind Image, exported for hashers that add
// caching around it.
func ImageDigest(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	h := sha256.New()
	var buf [8]byte
	b := img.Bounds()
	binary.BigEndian.PutUint32(buf[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(buf[4:8], uint32(b.Dy()))
	h.Write(buf[:])

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			binary.BigEndian.PutUint16(buf[0:2], uint16(r))
			binary.BigEndian.PutUint16(buf[2:4], uint16(g))
			binary.BigEndian.PutUint16(buf[4:6], uint16(bl))
			binary.BigEndian.PutUint16(buf[6:8], uint16(a))
			h.Write(buf[:])
		}
	}

	return h.Sum(nil), nil
}
