// Package htmlcache keeps fetched page markup on disk so repeated scans
// of the same URLs skip the network.
package htmlcache

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache is a file-per-URL store with a TTL.
type Cache struct {
	dir string
	ttl time.Duration
}

// New creates the cache directory if needed.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{
		dir: dir,
		ttl: ttl,
	}, nil
}

// key hashes the URL into a stable filename.
func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x.html", hash)
}

// Get returns the cached markup for url and true on a hit. Entries older
// than the TTL count as misses.
func (c *Cache) Get(url string) (string, bool) {
	filePath := filepath.Join(c.dir, c.key(url))

	info, err := os.Stat(filePath)
	if err != nil {
		return "", false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return "", false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores the markup for url.
func (c *Cache) Set(url string, markup string) error {
	filePath := filepath.Join(c.dir, c.key(url))
	if err := os.WriteFile(filePath, []byte(markup), 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Prune deletes entries older than the TTL and returns how many were
// removed. Get already treats stale entries as misses; Prune reclaims the
// disk they occupy.
func (c *Cache) Prune() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) <= c.ttl {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove stale entry %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
