package digestcache_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/framealign/internal/digestcache"
	"github.com/katalvlaran/framealign/internal/frames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ frames.DigestCache = (*digestcache.Cache)(nil)

func TestCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := digestcache.Open(dir)
	require.NoError(t, err)

	_, ok, err := c.Get("a.png|10|1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put("a.png|10|1", []byte{1, 2, 3}))
	require.NoError(t, c.Put("a.png|10|1", []byte{4, 5, 6}))
	got, ok, err := c.Get("a.png|10|1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{4, 5, 6}, got)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	// Values survive a reopen.
	c, err = digestcache.Open(dir)
	require.NoError(t, err)
	defer c.Close()
	got, ok, err = c.Get("a.png|10|1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{4, 5, 6}, got)
}

// TestCache_BulkPutSurvivesClose writes a run's worth of digests without
// per-write sync and reads every one back after a reopen.
func TestCache_BulkPutSurvivesClose(t *testing.T) {
	const n = 500
	dir := t.TempDir()
	c, err := digestcache.Open(dir)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, c.Put("f"+strconv.Itoa(i)+".png|1|1", []byte{byte(i), byte(i >> 8)}))
	}
	got, ok, err := c.Get("f7.png|1|1")
	require.NoError(t, err)
	require.True(t, ok, "visible before close")
	assert.Equal(t, []byte{7, 0}, got)
	require.NoError(t, c.Close())

	c, err = digestcache.Open(dir)
	require.NoError(t, err)
	defer c.Close()
	for i := 0; i < n; i++ {
		got, ok, err := c.Get("f" + strconv.Itoa(i) + ".png|1|1")
		require.NoError(t, err)
		require.True(t, ok, i)
		assert.Equal(t, []byte{byte(i), byte(i >> 8)}, got)
	}
}

func TestCache_Closed(t *testing.T) {
	c, err := digestcache.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, _, err = c.Get("k")
	assert.ErrorIs(t, err, digestcache.ErrClosed)
	assert.ErrorIs(t, c.Put("k", []byte{1}), digestcache.ErrClosed)
}

func TestOpen_RequiresDir(t *testing.T) {
	_, err := digestcache.Open("")
	assert.Error(t, err)
}
