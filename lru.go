package strata

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// LRUCache is a bounded read-through cache over one inner store. Unlike
// CacheStore it populates itself on Get and evicts under pressure; the
// inner store remains authoritative at all times.
type LRUCache struct {
	c     *lru.Cache
	inner Storage
}

func NewLRUCache(inner Storage, size int) (*LRUCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ConfigError, err)
	}
	return &LRUCache{c: c, inner: inner}, nil
}

func (s *LRUCache) Get(r Ref) (interface{}, error) {
	if got, ok := s.c.Get(r); ok {
		return got, nil
	}
	got, err := s.inner.Get(r)
	if err != nil {
		return nil, err
	}
	s.c.Add(r, got)
	return got, nil
}

func (s *LRUCache) Put(r Ref, i interface{}) error {
	if err := s.inner.Put(r, i); err != nil {
		return err
	}
	s.c.Add(r, i)
	return nil
}

// Merge invalidates rather than updates: the merged result is whatever
// the inner store says on the next Get.
func (s *LRUCache) Merge(r Ref, i interface{}) error {
	s.c.Remove(r)
	return s.inner.Merge(r, i)
}

func (s *LRUCache) Delete(r Ref) error {
	s.c.Remove(r)
	return s.inner.Delete(r)
}
