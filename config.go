package strata

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FromYAML builds a combinator stack from a declarative document, e.g.
//
//	type: json
//	inner:
//	  type: cache
//	  cache:
//	    type: memory
//	  base:
//	    type: prefix
//	    dir: /var/data
//	    inner:
//	      type: disktext
//
// Any registered store type (see Register) can appear.
func FromYAML(buf []byte) (Storage, error) {
	var conf map[string]interface{}
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, errors.Wrapf(ConfigError, "parsing yaml: %v", err)
	}
	typ, ok := conf["type"].(string)
	if !ok {
		return nil, errors.Wrap(ConfigError, `top-level config missing "type"`)
	}
	return Create(typ, conf)
}
