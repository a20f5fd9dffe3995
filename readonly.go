package strata

import "fmt"

var ReadOnlyError = fmt.Errorf("%w: read only", NotSupported)

// ReadOnly exposes only Get from the wrapped store; every mutation fails
// with ReadOnlyError.
type ReadOnly struct {
	c Storage
}

func NewReadOnly(c Storage) *ReadOnly {
	return &ReadOnly{c: c}
}

func (ro ReadOnly) Get(r Ref) (interface{}, error) {
	return ro.c.Get(r)
}

func (ro ReadOnly) Put(Ref, interface{}) error {
	return ReadOnlyError
}

func (ro ReadOnly) Merge(Ref, interface{}) error {
	return ReadOnlyError
}

func (ro ReadOnly) Delete(Ref) error {
	return ReadOnlyError
}
