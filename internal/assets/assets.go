// Package assets resolves logical asset paths through a stack of read-only filesystems.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// Scheme prefixes logical asset paths, e.g. "rom:/water.tga".
const Scheme = "rom:/"

// ErrNotFound is returned when no layer holds the requested asset.
var ErrNotFound = errors.New("asset not found")

// Manager handles asset loading from layered filesystems.
type Manager struct {
	layers []layer
	cache  *Cache
	mu     sync.RWMutex
}

type layer struct {
	name string
	fsys fs.FS
}

// NewManager creates a manager with no layers.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// NewDefaultManager creates a manager backed by the embedded ROM, with overrideDir
// (if non-empty) searched first.
func NewDefaultManager(overrideDir string) (*Manager, error) {
	m := NewManager()
	m.AddLayer("rom", ROM())
	if overrideDir != "" {
		if err := m.AddDir(overrideDir); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddLayer adds a filesystem to the manager.
// Layers are searched in reverse order (last added = highest priority).
func (m *Manager) AddLayer(name string, fsys fs.FS) {
	m.mu.Lock()
	m.layers = append(m.layers, layer{name: name, fsys: fsys})
	m.mu.Unlock()
}

// AddDir adds a directory on disk as the highest-priority layer.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("opening asset directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset path %s is not a directory", dir)
	}
	m.AddLayer(dir, os.DirFS(dir))
	return nil
}

// Resolve converts a logical path into a slash-separated path valid for fs.FS.
func Resolve(logical string) (string, error) {
	name, ok := strings.CutPrefix(logical, Scheme)
	if !ok {
		return "", fmt.Errorf("asset path %q lacks %q prefix", logical, Scheme)
	}
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("invalid asset path %q", logical)
	}
	return name, nil
}

// Load reads the asset at a logical path.
func (m *Manager) Load(logical string) ([]byte, error) {
	if data, ok := m.cache.Get(logical); ok {
		return data, nil
	}

	name, err := Resolve(logical)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.layers[i].fsys, name)
		if err == nil {
			m.cache.Set(logical, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s from %s: %w", name, m.layers[i].name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, logical)
}

// Stats returns the cache hit and miss counts.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all layers and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.layers = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	// Write lock: the counters change on every lookup
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
