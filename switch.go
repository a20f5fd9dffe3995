package strata

import "fmt"

// SwitchFunc derives the routing key for a reference.
type SwitchFunc func(Ref) (string, error)

// Switch dispatches every operation to the store registered under the
// key derived from the reference. The route table is consulted on every
// call; nothing is cached across calls. An unregistered key fails with
// NotFound.
type Switch struct {
	routes map[string]Storage
	logic  SwitchFunc
}

func NewSwitch(routes map[string]Storage, logic SwitchFunc) *Switch {
	return &Switch{routes: routes, logic: logic}
}

// NewSchemeSwitch routes by the reference scheme.
func NewSchemeSwitch(routes map[string]Storage) *Switch {
	return NewSwitch(routes, func(r Ref) (string, error) {
		return r.Scheme, nil
	})
}

// NewFirstPathSwitch routes by the first path component.
func NewFirstPathSwitch(routes map[string]Storage) *Switch {
	return NewSwitch(routes, func(r Ref) (string, error) {
		return r.PathComponents()[0], nil
	})
}

func (s Switch) find(r Ref) (Storage, error) {
	key, err := s.logic(r)
	if err != nil {
		return nil, err
	}
	c, ok := s.routes[key]
	if !ok {
		return nil, fmt.Errorf("%w: no store registered for key %q", NotFound, key)
	}
	return c, nil
}

func (s Switch) Get(r Ref) (interface{}, error) {
	c, err := s.find(r)
	if err != nil {
		return nil, err
	}
	return c.Get(r)
}

func (s Switch) Put(r Ref, i interface{}) error {
	c, err := s.find(r)
	if err != nil {
		return err
	}
	return c.Put(r, i)
}

func (s Switch) Merge(r Ref, i interface{}) error {
	c, err := s.find(r)
	if err != nil {
		return err
	}
	return c.Merge(r, i)
}

func (s Switch) Delete(r Ref) error {
	c, err := s.find(r)
	if err != nil {
		return err
	}
	return c.Delete(r)
}
