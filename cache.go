package strata

// CacheStore is a write-through mirror over two peer stores: base is
// authoritative, cache is advisory. Gets never populate the cache, and
// mutations apply to both sides with no rollback when one side fails;
// cache/base consistency after a partial failure is explicitly not
// guaranteed. For a self-populating bounded cache see LRUCache.
type CacheStore struct {
	cache, base Storage
}

func NewCacheStore(cache, base Storage) *CacheStore {
	return &CacheStore{cache: cache, base: base}
}

// Get tries the cache and falls through to base on any cache miss or
// cache failure; cache-layer errors are swallowed, never surfaced.
func (cs CacheStore) Get(r Ref) (interface{}, error) {
	if i, err := cs.cache.Get(r); err == nil && i != nil {
		return i, nil
	}
	return cs.base.Get(r)
}

func (cs CacheStore) Put(r Ref, i interface{}) error {
	if err := cs.cache.Put(r, i); err != nil {
		return err
	}
	return cs.base.Put(r, i)
}

func (cs CacheStore) Merge(r Ref, i interface{}) error {
	if err := cs.cache.Merge(r, i); err != nil {
		return err
	}
	return cs.base.Merge(r, i)
}

func (cs CacheStore) Delete(r Ref) error {
	if err := cs.cache.Delete(r); err != nil {
		return err
	}
	return cs.base.Delete(r)
}
