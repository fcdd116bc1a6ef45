package pool

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry is a thin name-to-pool mapping. It is constructed explicitly
// and threaded through the application rather than living as a
// process-wide singleton, so lifecycle (construct, initialize, shut
// down) stays with the owner.
type Registry[R Resource] struct {
	mu    sync.RWMutex
	pools map[string]*Pool[R]
}

// NewRegistry creates an empty registry.
func NewRegistry[R Resource]() *Registry[R] {
	return &Registry[R]{pools: make(map[string]*Pool[R])}
}

// Register adds a pool under its own name. Registering a second pool
// with the same name is an error.
func (r *Registry[R]) Register(p *Pool[R]) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pools[p.Name()]; exists {
		return fmt.Errorf("pool %q is already registered", p.Name())
	}
	r.pools[p.Name()] = p
	return nil
}

// Get returns the pool registered under name.
func (r *Registry[R]) Get(name string) (*Pool[R], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pools[name]
	return p, ok
}

// Names returns the registered pool names in sorted order.
func (r *Registry[R]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pools))
	for name := range r.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InitializeAll initializes every registered pool. Pools initialize
// concurrently with each other (each pool still creates its own servers
// sequentially). The first failure is returned and cancels the shared
// context so sibling pools fail fast; every pool still ends in a
// well-defined state, ready or shut down.
func (r *Registry[R]) InitializeAll(ctx context.Context) error {
	r.mu.RLock()
	pools := make([]*Pool[R], 0, len(r.pools))
	for _, p := range r.pools {
		pools = append(pools, p)
	}
	r.mu.RUnlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range pools {
		g.Go(func() error {
			return p.Initialize(ctx)
		})
	}
	return g.Wait()
}

// ShutdownAll shuts down every registered pool. Shutdown never fails,
// so this always runs to completion.
func (r *Registry[R]) ShutdownAll(ctx context.Context) {
	r.mu.RLock()
	pools := make([]*Pool[R], 0, len(r.pools))
	for _, p := range r.pools {
		pools = append(pools, p)
	}
	r.mu.RUnlock()

	var wg sync.WaitGroup
	for _, p := range pools {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Shutdown(ctx)
		}()
	}
	wg.Wait()
}
