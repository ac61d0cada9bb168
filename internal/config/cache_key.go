package config

import (
	"fmt"
	"strings"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ProjectListKey returns the cache key for a filtered project listing.
// Category is kept case-sensitive to match the store's comparison.
func (r *CacheKeyStruct) ProjectListKey(category string, featuredOnly bool, limit int) string {
	return fmt.Sprintf("folio:projects:c=%s:f=%t:l=%d", strings.TrimSpace(category), featuredOnly, limit)
}

// CourseListKey returns the cache key for the featured course listing.
func (r *CacheKeyStruct) CourseListKey() string {
	return "folio:courses:featured"
}

// ContactRateKey returns the fixed-window rate limit key for a client.
func (r *CacheKeyStruct) ContactRateKey(clientKey string, bucket int64) string {
	return fmt.Sprintf("folio:rl:contact:%s:%d", clientKey, bucket)
}

var CacheKey = NewCacheKeyStruct()
