package strata

import "sync"

// Deferred builds its store lazily on first use, which lets expensive
// backends (database handles, mounted directories) participate in a
// stack that may never touch them.
type Deferred struct {
	factory func() (Storage, error)
	c       Storage
	lock    sync.Mutex
}

func NewDeferred(factory func() (Storage, error)) *Deferred {
	return &Deferred{factory: factory}
}

func (d *Deferred) init() error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.c != nil {
		return nil
	}
	c, err := d.factory()
	if err != nil {
		return err
	}
	d.c = c
	return nil
}

func (d *Deferred) Get(r Ref) (interface{}, error) {
	if err := d.init(); err != nil {
		return nil, err
	}
	return d.c.Get(r)
}

func (d *Deferred) Put(r Ref, i interface{}) error {
	if err := d.init(); err != nil {
		return err
	}
	return d.c.Put(r, i)
}

func (d *Deferred) Merge(r Ref, i interface{}) error {
	if err := d.init(); err != nil {
		return err
	}
	return d.c.Merge(r, i)
}

func (d *Deferred) Delete(r Ref) error {
	if err := d.init(); err != nil {
		return err
	}
	return d.c.Delete(r)
}
