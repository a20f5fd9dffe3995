package strata

import (
	"encoding/json"
	"fmt"
)

// NewJSONMapper wraps inner with a codec that stores structured values
// (maps, slices, scalars) as their JSON text and parses them back on
// retrieval. Malformed stored text fails with EncodingError.
func NewJSONMapper(inner Storage) *Mapper {
	m := NewMapper(inner)
	m.MapToStore = func(i interface{}, r Ref) (interface{}, error) {
		buf, err := json.Marshal(i)
		if err != nil {
			return nil, fmt.Errorf("%w: marshalling for %v: %v", EncodingError, r, err)
		}
		return string(buf), nil
	}
	m.MapRetrieved = func(i interface{}, r Ref) (interface{}, error) {
		buf, err := Blob(i)
		if err != nil {
			return nil, err
		}
		var out interface{}
		if err := json.Unmarshal(buf, &out); err != nil {
			return nil, fmt.Errorf("%w: parsing %v: %v", EncodingError, r, err)
		}
		return out, nil
	}
	return m
}
