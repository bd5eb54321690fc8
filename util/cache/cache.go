// Package cache is a small string key-value store persisted as a json file.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type simpleCache struct {
	Data map[string]string `json:"Data"`
}

// Cache is safe for concurrent use. Keys are case-insensitive.
type Cache struct {
	path string

	mu   sync.Mutex
	data *simpleCache
}

func New(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) persist() error {
	jsonData, err := json.MarshalIndent(c.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create cache dir: %w", err)
	}
	return os.WriteFile(c.path, jsonData, 0o644)
}

func (c *Cache) load() *simpleCache {
	if c.data != nil {
		return c.data
	}
	c.data = &simpleCache{
		Data: map[string]string{},
	}
	content, err := os.ReadFile(c.path)
	if err != nil {
		// WARNING: swallow error here
		return c.data
	}
	loaded := &simpleCache{}
	if err := json.Unmarshal(content, loaded); err != nil || loaded.Data == nil {
		// WARNING: swallow error here
		return c.data
	}
	c.data = loaded
	return c.data
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, found := c.load().Data[strings.ToLower(key)]
	return value, found
}

// Set stores value and writes the whole cache back to disk.
func (c *Cache) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.load().Data[strings.ToLower(key)] = value
	return c.persist()
}
