// Released under an MIT license. See LICENSE.

// Package hash provides lash's name to value mapping type.
package hash

import (
	"sync"

	"github.com/lash-lang/lash/internal/common/interface/cell"
)

// T (hash) maps names to values.
type T struct {
	sync.RWMutex
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Copy creates a new hash with a copy of every entry.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	fresh := New()
	for k, v := range h.m {
		fresh.m[k] = v
	}

	return fresh
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	h.Lock()
	defer h.Unlock()

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	return true
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) cell.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Keys returns the names present in the hash h.
func (h *hash) Keys() []string {
	h.RLock()
	defer h.RUnlock()

	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	return keys
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.Lock()
	defer h.Unlock()

	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
