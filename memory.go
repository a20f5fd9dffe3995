package strata

import (
	"fmt"
	"sync"
)

// Memory is the map-backed leaf store, the default backing for
// combinators in tests. Never durable. Safe for concurrent use.
type Memory struct {
	mu sync.Mutex
	m  map[Ref]interface{}
}

func NewMemory() *Memory {
	return &Memory{m: make(map[Ref]interface{})}
}

func (mem *Memory) Get(r Ref) (interface{}, error) {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	i, ok := mem.m[r]
	if !ok {
		return nil, fmt.Errorf("%w (%v)", NotFound, r)
	}
	return i, nil
}

func (mem *Memory) Put(r Ref, i interface{}) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	mem.m[r] = i
	return nil
}

func (mem *Memory) Merge(r Ref, i interface{}) error {
	return mem.Put(r, i)
}

// Delete of a missing key is a silent no-op, unlike the disk stores.
func (mem *Memory) Delete(r Ref) error {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	delete(mem.m, r)
	return nil
}

// Len reports the number of stored values.
func (mem *Memory) Len() int {
	mem.mu.Lock()
	defer mem.mu.Unlock()
	return len(mem.m)
}
