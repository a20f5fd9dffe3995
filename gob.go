package strata

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// NewGobMapper wraps inner with an opaque binary codec for arbitrary
// in-process values, intended for stores that accept raw bytes. Concrete
// types beyond the builtins must be registered with gob by the caller.
// Round-trip fidelity is only promised within a single process version.
func NewGobMapper(inner Storage) *Mapper {
	m := NewMapper(inner)
	m.MapToStore = func(i interface{}, r Ref) (interface{}, error) {
		w := new(bytes.Buffer)
		if err := gob.NewEncoder(w).Encode(&i); err != nil {
			return nil, fmt.Errorf("%w: encoding for %v: %v", EncodingError, r, err)
		}
		return w.Bytes(), nil
	}
	m.MapRetrieved = func(i interface{}, r Ref) (interface{}, error) {
		buf, err := Blob(i)
		if err != nil {
			return nil, err
		}
		var out interface{}
		if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&out); err != nil {
			return nil, fmt.Errorf("%w: decoding %v: %v", EncodingError, r, err)
		}
		return out, nil
	}
	return m
}
