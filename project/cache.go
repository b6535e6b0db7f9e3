package project

import (
	"fmt"
	"os"

	"github.com/minio/highwayhash"
	"github.com/vmihailenco/msgpack/v5"
)

var hashKey = []byte("starfix.v1.filecontent.hash.key!")

// HashContent returns the cache key for a file's content.
func HashContent(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Cache remembers which files were clean on earlier runs so unchanged files
// can be skipped. Entries map relative paths to content hashes; a file whose
// hash differs from its entry is re-analyzed.
type Cache struct {
	path    string
	entries map[string]uint64
	dirty   bool
}

// OpenCache loads the cache file at path. A missing or unreadable cache is
// not an error; it just starts empty.
func OpenCache(path string) *Cache {
	c := &Cache{path: path, entries: map[string]uint64{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	if err := msgpack.Unmarshal(data, &c.entries); err != nil {
		// A corrupt cache is discarded, never trusted.
		c.entries = map[string]uint64{}
	}
	return c
}

// Clean reports whether the file at path was clean with this exact content.
func (c *Cache) Clean(path string, hash uint64) bool {
	stored, ok := c.entries[path]
	return ok && stored == hash
}

// MarkClean records that the file at path had no findings.
func (c *Cache) MarkClean(path string, hash uint64) {
	if stored, ok := c.entries[path]; ok && stored == hash {
		return
	}
	c.entries[path] = hash
	c.dirty = true
}

// Invalidate forgets the entry for path.
func (c *Cache) Invalidate(path string) {
	if _, ok := c.entries[path]; !ok {
		return
	}
	delete(c.entries, path)
	c.dirty = true
}

// Save persists the cache when anything changed since it was opened.
func (c *Cache) Save() error {
	if !c.dirty {
		return nil
	}
	data, err := msgpack.Marshal(c.entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache %s: %w", c.path, err)
	}
	c.dirty = false
	return nil
}
