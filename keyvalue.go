package strata

// KeyValue is the surface an external key-value client must expose to be
// mounted behind the contract (a Redis or S3 wrapper, say). The adapter
// keeps network SDKs out of this module: the client is supplied by the
// caller and addressed by the rendered reference.
type KeyValue interface {
	Get(key string) (interface{}, error)
	Put(key string, value interface{}) error
	Delete(key string) error
}

type KeyValueStore struct {
	kv KeyValue
}

func NewKeyValueStore(kv KeyValue) *KeyValueStore {
	return &KeyValueStore{kv: kv}
}

func (c KeyValueStore) Get(r Ref) (interface{}, error) {
	return c.kv.Get(r.String())
}

func (c KeyValueStore) Put(r Ref, i interface{}) error {
	return c.kv.Put(r.String(), i)
}

func (c KeyValueStore) Merge(r Ref, i interface{}) error {
	return c.kv.Put(r.String(), i)
}

func (c KeyValueStore) Delete(r Ref) error {
	return c.kv.Delete(r.String())
}
