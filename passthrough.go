package strata

// Passthrough forwards every operation to one wrapped store. It exists
// as the base other combinators embed, overriding only the operations
// they intercept.
type Passthrough struct {
	inner Storage
}

func NewPassthrough(inner Storage) *Passthrough {
	return &Passthrough{inner: inner}
}

func (pt Passthrough) Get(r Ref) (interface{}, error) {
	return pt.inner.Get(r)
}

func (pt Passthrough) Put(r Ref, i interface{}) error {
	return pt.inner.Put(r, i)
}

func (pt Passthrough) Merge(r Ref, i interface{}) error {
	return pt.inner.Merge(r, i)
}

func (pt Passthrough) Delete(r Ref) error {
	return pt.inner.Delete(r)
}
