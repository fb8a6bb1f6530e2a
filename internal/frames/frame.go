package frames

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/corona10/goimagehash"
	"github.com/katalvlaran/framealign/metric"
)

// Frame is a handle to one frame file. Image decodes on first use and keeps
// the result until Release; hashing decodes transiently and keeps only the
// pixel digest and perceptual hashes.
type Frame struct {
	Index   int
	Path    string
	Size    int64
	ModTime time.Time

	mu     sync.Mutex
	img    image.Image
	digest []byte
	hashes map[metric.HashKind]*goimagehash.ImageHash
}

// Image decodes the frame on first call and returns the cached image after.
func (f *Frame) Image() (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.imageLocked()
}

func (f *Frame) imageLocked() (image.Image, error) {
	if f.img != nil {
		return f.img, nil
	}
	img, err := f.decode()
	if err != nil {
		return nil, err
	}
	f.img = img

	return img, nil
}

// peekLocked returns the held image, or a decoded copy that is not kept.
func (f *Frame) peekLocked() (image.Image, error) {
	if f.img != nil {
		return f.img, nil
	}

	return f.decode()
}

// Decode returns the frame image without retaining it.
func (f *Frame) Decode() (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.peekLocked()
}

func (f *Frame) decode() (image.Image, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("frames: %w", err)
	}
	defer fh.Close()

	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("frames: decode %s: %w", f.Path, err)
	}

	return img, nil
}

// PerceptualHash returns the cached perceptual hash of the given kind,
// decoding the frame if needed. Only the hash is kept.
func (f *Frame) PerceptualHash(kind metric.HashKind) (*goimagehash.ImageHash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if h, ok := f.hashes[kind]; ok {
		return h, nil
	}
	img, err := f.peekLocked()
	if err != nil {
		return nil, err
	}
	h, err := kind.Compute(img)
	if err != nil {
		return nil, fmt.Errorf("frames: %s hash of %s: %w", kind, f.Path, err)
	}
	if f.hashes == nil {
		f.hashes = make(map[metric.HashKind]*goimagehash.ImageHash, 1)
	}
	f.hashes[kind] = h

	return h, nil
}

func (f *Frame) setDigest(d []byte) {
	f.mu.Lock()
	f.digest = d
	f.mu.Unlock()
}

// Release drops the decoded image. Cached digests and hashes are kept.
func (f *Frame) Release() {
	f.mu.Lock()
	f.img = nil
	f.mu.Unlock()
}

// Held reports whether a decoded image is currently retained.
func (f *Frame) Held() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.img != nil
}

// CacheKey identifies the file content for the digest cache:
// path, size and modification time in nanoseconds.
func (f *Frame) CacheKey() string {
	return f.Path + "|" + strconv.FormatInt(f.Size, 10) + "|" + strconv.FormatInt(f.ModTime.UnixNano(), 10)
}

// String returns the frame path.
func (f *Frame) String() string { return f.Path }
