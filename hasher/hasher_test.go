package hasher_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/framealign/hasher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBytesAndString checks digest length and that equal content hashes equal.
func TestBytesAndString(t *testing.T) {
	db, err := hasher.Bytes().Hash([]byte("frame"))
	require.NoError(t, err)
	ds, err := hasher.String().Hash("frame")
	require.NoError(t, err)

	assert.Len(t, db, hasher.Size)
	assert.Equal(t, db, ds, "string and byte hashers agree on the same bytes")

	other, err := hasher.String().Hash("frame2")
	require.NoError(t, err)
	assert.NotEqual(t, ds, other)
}

// TestImage hashes pixels, not containers or bounds offsets.
func TestImage(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 2))
	rgba.Set(1, 1, color.RGBA{R: 200, A: 255})

	nrgba := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	nrgba.Set(11, 11, color.NRGBA{R: 200, A: 255})

	h := hasher.Image()
	d1, err := h.Hash(rgba)
	require.NoError(t, err)
	d2, err := h.Hash(nrgba)
	require.NoError(t, err)
	assert.Len(t, d1, hasher.Size)
	assert.Equal(t, d1, d2, "same pixels hash equal across image types and offsets")

	rgba.Set(0, 0, color.RGBA{G: 1, A: 255})
	d3, err := h.Hash(rgba)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3, "a single changed pixel changes the digest")

	tall := image.NewRGBA(image.Rect(0, 0, 2, 3))
	wide := image.NewRGBA(image.Rect(0, 0, 3, 2))
	dt, _ := h.Hash(tall)
	dw, _ := h.Hash(wide)
	assert.NotEqual(t, dt, dw, "dimensions are part of the digest")
}

// TestImage_Nil refuses to digest a missing image.
func TestImage_Nil(t *testing.T) {
	d, err := hasher.ImageDigest(nil)
	assert.ErrorIs(t, err, hasher.ErrNilImage)
	assert.Nil(t, d)

	_, err = hasher.Image().Hash(nil)
	assert.ErrorIs(t, err, hasher.ErrNilImage)
}
