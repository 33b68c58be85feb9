package primality

import (
	"fmt"
	"sort"
	"sync"
)

// Strategy keys accepted by the registry.
const (
	StrategySequential = "sequential"
	StrategyPool       = "pool"
	StrategyFuture     = "future"
)

// Registry maps strategy keys to Checkers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// NewDefaultRegistry returns a registry holding the three built-in
// strategies. Errors returned by its checkers carry the strategy name.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(StrategySequential, Named(NewSequentialChecker()))
	r.Register(StrategyPool, Named(NewPooledChecker()))
	r.Register(StrategyFuture, Named(NewFutureChecker()))
	return r
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GlobalRegistry returns the process-wide default registry.
func GlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewDefaultRegistry()
	})
	return globalRegistry
}

// Register adds or replaces the checker under key.
func (r *Registry) Register(key string, c Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[key] = c
}

// Get returns the checker registered under key.
func (r *Registry) Get(key string) (Checker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.checkers[key]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q", key)
	}
	return c, nil
}

// MustGet is like Get but panics on unknown keys. Intended for tests and
// static wiring.
func (r *Registry) MustGet(key string) Checker {
	c, err := r.Get(key)
	if err != nil {
		panic(err)
	}
	return c
}

// List returns the registered keys in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.checkers))
	for k := range r.checkers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns the checkers in key order.
func (r *Registry) GetAll() []Checker {
	keys := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Checker, 0, len(keys))
	for _, k := range keys {
		all = append(all, r.checkers[k])
	}
	return all
}
