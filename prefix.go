package strata

import (
	"fmt"
	"path"
)

// NewPrefixMapper roots a virtual reference space at baseDir: every
// reference path is rewritten to baseDir/<path components> before
// delegation, leaving the scheme untouched. Typical use is mounting a
// disk store at a real filesystem location.
func NewPrefixMapper(inner Storage, baseDir string) (*Mapper, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: base dir must be a non-empty path", ConfigError)
	}
	base := path.Clean(baseDir)
	m := NewMapper(inner)
	m.MapRef = func(r Ref) (Ref, error) {
		elems := append([]string{base}, r.PathComponents()...)
		return Ref{Scheme: r.Scheme, Path: path.Join(elems...)}, nil
	}
	return m, nil
}
