// Package resultcache memoizes whole decompressed EDL artifacts keyed by a
// content fingerprint of the compressed bytes. It never provides random
// access into a compressed stream: every cache miss still runs the decoder
// to completion before the result is stored, so the cache is strictly an
// optimization layered in front of Decompress, not a substitute for it.
package resultcache

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/pebble/v2"
	"github.com/dgryski/go-tinylfu"

	"github.com/macfork/edl"
)

const (
	hotCacheSize    = 256
	hotCacheSamples = hotCacheSize * 10
	fingerprintPeek = 64 * 1024
)

// Cache is an opt-in decorator in front of edl.Decompress.
type Cache struct {
	db  *pebble.DB
	hot *tinylfu.T[uint64, []byte]
}

// New opens (or creates) a pebble store rooted at dir for the durable layer,
// and an in-process tinylfu admission cache for the hot set.
func New(dir string) (*Cache, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("resultcache: opening %s: %w", dir, err)
	}

	return &Cache{
		db:  db,
		hot: tinylfu.New[uint64, []byte](hotCacheSize, hotCacheSamples, hashKey),
	}, nil
}

// Close releases the durable store.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Decompress returns the decompressed bytes of src, serving from the hot
// cache or the durable store when available, and populating both on a
// double miss. Cache corruption or I/O errors are treated as misses (logged
// at slog.Warn) and never surfaced as decode errors: the cache can always be
// bypassed by falling through to a real decode.
func (c *Cache) Decompress(src io.ReaderAt, size int64) ([]byte, error) {
	key, err := fingerprint(src, size)
	if err != nil {
		return edl.Decompress(src, size)
	}

	if v, ok := c.hot.Get(key); ok {
		return v, nil
	}

	if v, closer, err := c.db.Get(storeKey(key)); err == nil {
		out := append([]byte(nil), v...)
		closer.Close()
		c.hot.Add(key, out)
		return out, nil
	} else if err != pebble.ErrNotFound {
		slog.Warn("resultcache: store read failed, falling back to decode", "err", err)
	}

	out, err := edl.Decompress(src, size)
	if err != nil {
		return nil, err
	}

	if err := c.db.Set(storeKey(key), out, pebble.Sync); err != nil {
		slog.Warn("resultcache: store write failed", "err", err)
	}
	c.hot.Add(key, out)

	return out, nil
}

func storeKey(key uint64) []byte {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(key >> (8 * uint(i)))
	}
	return b[:]
}

func hashKey(k uint64) uint64 { return k }

// fingerprint hashes up to the first fingerprintPeek bytes of src plus the
// declared size: cheap, and sufficient to distinguish distinct containers
// without reading the whole (possibly large) compressed stream.
func fingerprint(src io.ReaderAt, size int64) (uint64, error) {
	n := size
	if n > fingerprintPeek {
		n = fingerprintPeek
	}
	buf := make([]byte, n)
	if _, err := src.ReadAt(buf, 0); err != nil && err != io.EOF {
		return 0, err
	}

	var h xxhash.Digest
	h.Write(buf)
	fmt.Fprintf(&h, "|%d", size)
	return h.Sum64(), nil
}
