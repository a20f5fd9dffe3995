package strata

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// Factory builds a store from its configuration map.
type Factory func(conf map[string]interface{}) (Storage, error)

var registry = struct {
	sync.Mutex
	m map[string]Factory
}{m: make(map[string]Factory)}

// Register makes a store type available to Create. Registering a name
// twice panics; do it from init or main.
func Register(typ string, f Factory) {
	registry.Lock()
	defer registry.Unlock()
	if _, ok := registry.m[typ]; ok {
		panic(fmt.Sprintf("duplicate store type %q", typ))
	}
	registry.m[typ] = f
}

// Create builds a store of the registered type from conf.
func Create(typ string, conf map[string]interface{}) (Storage, error) {
	registry.Lock()
	f, ok := registry.m[typ]
	registry.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: unknown store type %q", ConfigError, typ)
	}
	return f(conf)
}

// nested builds the store configured under conf[key].
func nested(conf map[string]interface{}, key string) (Storage, error) {
	sub, ok := conf[key].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing %q store config", ConfigError, key)
	}
	typ, ok := sub["type"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %q store config missing \"type\"", ConfigError, key)
	}
	s, err := Create(typ, sub)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s store", key)
	}
	return s, nil
}

func init() {
	Register("memory", func(map[string]interface{}) (Storage, error) {
		return NewMemory(), nil
	})
	Register("disktext", func(map[string]interface{}) (Storage, error) {
		return NewDiskText(), nil
	})
	Register("diskbytes", func(map[string]interface{}) (Storage, error) {
		return NewDiskBytes(), nil
	})
	Register("json", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		return NewJSONMapper(inner), nil
	})
	Register("gob", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		return NewGobMapper(inner), nil
	})
	Register("prefix", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		dir, _ := conf["dir"].(string)
		return NewPrefixMapper(inner, dir)
	})
	Register("encodedrefs", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		return NewEncodedRefs(inner), nil
	})
	Register("cache", func(conf map[string]interface{}) (Storage, error) {
		cache, err := nested(conf, "cache")
		if err != nil {
			return nil, err
		}
		base, err := nested(conf, "base")
		if err != nil {
			return nil, err
		}
		return NewCacheStore(cache, base), nil
	})
	Register("lru", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		size, ok := conf["size"].(int)
		if !ok {
			return nil, fmt.Errorf("%w: lru store config needs an integer \"size\"", ConfigError)
		}
		return NewLRUCache(inner, size)
	})
	Register("appender", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		return NewAppender(inner), nil
	})
	Register("readonly", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		return NewReadOnly(inner), nil
	})
	Register("versioning", func(conf map[string]interface{}) (Storage, error) {
		inner, err := nested(conf, "inner")
		if err != nil {
			return nil, err
		}
		return NewVersioning(inner), nil
	})
}
