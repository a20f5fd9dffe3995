package strata

// RefMapper rewrites a reference before delegation.
type RefMapper func(Ref) (Ref, error)

// PayloadMapper transforms a payload on its way into or out of the inner
// store; the reference is the one the caller used, not the mapped one.
type PayloadMapper func(interface{}, Ref) (interface{}, error)

// Mapper transforms references and/or payloads around one inner store.
// Nil hooks are identity, so a bare Mapper is a passthrough. Get applies
// MapRef then MapRetrieved on the result; Put and Merge apply MapRef and
// MapToStore; Delete applies MapRef only.
type Mapper struct {
	inner        Storage
	MapRef       RefMapper
	MapToStore   PayloadMapper
	MapRetrieved PayloadMapper
}

func NewMapper(inner Storage) *Mapper {
	return &Mapper{inner: inner}
}

func (m Mapper) mapRef(r Ref) (Ref, error) {
	if m.MapRef == nil {
		return r, nil
	}
	return m.MapRef(r)
}

func (m Mapper) toStore(i interface{}, r Ref) (interface{}, error) {
	if m.MapToStore == nil {
		return i, nil
	}
	return m.MapToStore(i, r)
}

func (m Mapper) retrieved(i interface{}, r Ref) (interface{}, error) {
	if m.MapRetrieved == nil {
		return i, nil
	}
	return m.MapRetrieved(i, r)
}

func (m Mapper) Get(r Ref) (interface{}, error) {
	mr, err := m.mapRef(r)
	if err != nil {
		return nil, err
	}
	i, err := m.inner.Get(mr)
	if err != nil {
		return nil, err
	}
	return m.retrieved(i, r)
}

func (m Mapper) Put(r Ref, i interface{}) error {
	return m.update(r, i, m.inner.Put)
}

func (m Mapper) Merge(r Ref, i interface{}) error {
	return m.update(r, i, m.inner.Merge)
}

func (m Mapper) update(r Ref, i interface{}, mutator func(Ref, interface{}) error) error {
	mr, err := m.mapRef(r)
	if err != nil {
		return err
	}
	enc, err := m.toStore(i, r)
	if err != nil {
		return err
	}
	return mutator(mr, enc)
}

func (m Mapper) Delete(r Ref) error {
	mr, err := m.mapRef(r)
	if err != nil {
		return err
	}
	return m.inner.Delete(mr)
}
