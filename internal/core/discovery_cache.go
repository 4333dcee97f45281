package core

import (
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

type versionKey struct {
	contentType string
	variant     string
}

// DiscoveryCache holds discovery results for the lifetime of its owner.
// Entries are computed lazily, at most once per key even under concurrent
// first access, and are never invalidated.
type DiscoveryCache struct {
	mu       sync.RWMutex
	variants map[string][]string
	versions map[versionKey][]string
	flight   singleflight.Group
}

func NewDiscoveryCache() *DiscoveryCache {
	return &DiscoveryCache{
		variants: map[string][]string{},
		versions: map[versionKey][]string{},
	}
}

// Variants returns the cached variant list of contentType, computing it
// with compute on first use.
func (c *DiscoveryCache) Variants(contentType string, compute func() []string) []string {
	c.mu.RLock()
	cached, ok := c.variants[contentType]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(cached)
	}
	result, _, _ := c.flight.Do("variants\x00"+contentType, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.variants[contentType]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		computed := nonNil(compute())
		c.mu.Lock()
		c.variants[contentType] = computed
		c.mu.Unlock()
		log.Debug().
			Str("content_type", contentType).
			Strs("variants", computed).
			Msg("variant discovery cached")
		return computed, nil
	})
	return slices.Clone(result.([]string))
}

// Versions returns the cached version list of a content type and variant,
// computing it with compute on first use.
func (c *DiscoveryCache) Versions(contentType string, variant string, compute func() []string) []string {
	key := versionKey{contentType: contentType, variant: variant}
	c.mu.RLock()
	cached, ok := c.versions[key]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(cached)
	}
	result, _, _ := c.flight.Do("versions\x00"+contentType+"\x00"+variant, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.versions[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		computed := nonNil(compute())
		c.mu.Lock()
		c.versions[key] = computed
		c.mu.Unlock()
		log.Debug().
			Str("content_type", contentType).
			Str("variant", variant).
			Strs("versions", computed).
			Msg("version discovery cached")
		return computed, nil
	})
	return slices.Clone(result.([]string))
}

// Len reports how many variant and version entries are populated.
func (c *DiscoveryCache) Len() (variants int, versions int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.variants), len(c.versions)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
