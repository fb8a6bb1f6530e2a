// Package digestcache persists frame digests between runs in a Pebble
// key/value store, so re-aligning the same recordings skips decoding.
package digestcache

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
)

// ErrClosed is returned by operations on a closed Cache.
var ErrClosed = errors.New("digestcache: closed")

// Cache maps content keys to digests. Get and Put may be called
// concurrently; Close may not.
type Cache struct {
	db *pebble.DB
}

// Open creates or opens a cache rooted at dir.
func Open(dir string) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("digestcache: dir is required")
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("digestcache: open %s: %w", dir, err)
	}

	return &Cache{db: db}, nil
}

// Get returns the digest stored under key. A missing key is not an error.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	if c.db == nil {
		return nil, false, ErrClosed
	}
	val, closer, err := c.db.Get([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("digestcache: get: %w", err)
	}
	defer closer.Close()

	return append([]byte(nil), val...), true, nil
}

// Put stores digest under key, replacing any previous value. Writes are not
// synced individually; Close makes them durable.
func (c *Cache) Put(key string, digest []byte) error {
	if c.db == nil {
		return ErrClosed
	}
	if err := c.db.Set([]byte(key), digest, pebble.NoSync); err != nil {
		return fmt.Errorf("digestcache: put: %w", err)
	}

	return nil
}

// Close flushes and closes the store. Closing twice is a no-op.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	ferr := c.db.Flush()
	err := c.db.Close()
	c.db = nil
	if ferr != nil {
		return fmt.Errorf("digestcache: flush: %w", ferr)
	}

	return err
}
