package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache stores opaque values by key
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey derives the key for a remote input reference
func CacheKey(ref string) string {
	hash := sha256.Sum256([]byte(ref))
	return "dossier:v1:" + hex.EncodeToString(hash[:])
}

// Document is a fetched remote input as cached
type Document struct {
	Ext       string    `json:"ext"`
	FinalURL  string    `json:"final_url,omitempty"`
	Body      []byte    `json:"body"`
	FetchedAt time.Time `json:"fetched_at"`
}

// DocumentCache stores fetched documents keyed by their reference
type DocumentCache struct {
	backend Cache
}

// NewDocumentCache wraps a byte cache
func NewDocumentCache(backend Cache) *DocumentCache {
	return &DocumentCache{backend: backend}
}

// Get returns the cached document for ref; undecodable entries are misses
func (c *DocumentCache) Get(ref string) (*Document, bool) {
	raw, ok := c.backend.Get(CacheKey(ref))
	if !ok {
		return nil, false
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		_ = c.backend.Delete(CacheKey(ref))
		return nil, false
	}
	return &doc, true
}

// Put stores doc under ref using the backend's default TTL
func (c *DocumentCache) Put(ref string, doc *Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.backend.Set(CacheKey(ref), raw, 0)
}
