package frames

import (
	"bytes"
	"log/slog"
	"sync/atomic"

	"github.com/katalvlaran/framealign/align"
	"github.com/katalvlaran/framealign/hasher"
	"github.com/katalvlaran/framealign/internal/logging"
)

// DigestCache stores frame digests across runs. Keys come from
// Frame.CacheKey.
type DigestCache interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, digest []byte) error
}

// Hasher digests frames by their decoded pixels. Digests are memoised on
// the Frame and, when a DigestCache is set, persisted across runs. Cache
// failures are logged and never fail the hash.
type Hasher struct {
	cache  DigestCache
	logger *slog.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

var _ align.Hasher[*Frame] = (*Hasher)(nil)

// NewHasher returns a frame hasher. cache and logger may be nil.
func NewHasher(cache DigestCache, logger *slog.Logger) *Hasher {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Hasher{cache: cache, logger: logger}
}

// Hash returns the SHA-256 pixel digest of f.
func (h *Hasher) Hash(f *Frame) ([]byte, error) {
	f.mu.Lock()
	d := f.digest
	f.mu.Unlock()
	if d != nil {
		return d, nil
	}

	key := f.CacheKey()
	if h.cache != nil {
		cached, ok, err := h.cache.Get(key)
		switch {
		case err != nil:
			h.logger.Warn("digest cache read failed", slog.String("frame", f.Path), slog.Any("error", err))
		case ok && len(cached) == hasher.Size:
			h.hits.Add(1)
			f.setDigest(cached)

			return cached, nil
		}
	}
	h.misses.Add(1)

	img, err := f.Decode()
	if err != nil {
		return nil, err
	}
	d, err = hasher.ImageDigest(img)
	if err != nil {
		return nil, err
	}
	f.setDigest(d)

	if h.cache != nil {
		if err = h.cache.Put(key, d); err != nil {
			h.logger.Warn("digest cache write failed", slog.String("frame", f.Path), slog.Any("error", err))
		}
	}

	return d, nil
}

// Stats returns how many digests came from the cache and how many were
// computed by decoding.
func (h *Hasher) Stats() (hits, misses int64) {
	return h.hits.Load(), h.misses.Load()
}

// DigestMetric returns a metric that is 0 for frames with equal pixel
// digests and 1 otherwise.
func DigestMetric(h *Hasher) align.Metric[*Frame] {
	return align.MetricFunc[*Frame](func(x, y *Frame) float64 {
		dx, err := h.Hash(x)
		if err != nil {
			return 1
		}
		dy, err := h.Hash(y)
		if err != nil {
			return 1
		}
		if bytes.Equal(dx, dy) {
			return 0
		}

		return 1
	})
}
