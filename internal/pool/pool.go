package pool

import (
	"context"
	"sync"

	"github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"
)

// State represents the lifecycle state of a Pool.
type State string

const (
	// StateUninitialized is the state of a freshly constructed pool.
	StateUninitialized State = "uninitialized"
	// StateInitializing is the state while Initialize is creating servers.
	StateInitializing State = "initializing"
	// StateReady is the only state in which Acquire and Release succeed.
	StateReady State = "ready"
	// StateShutdown is terminal; the pool cannot be reused.
	StateShutdown State = "shutdown"
)

// Resource is the capability a pooled server must provide. The pool
// never inspects protocol-level content; it only needs an identity for
// diagnostics and a disposal operation.
type Resource interface {
	// ID returns a stable identifier used for accounting and logging.
	ID() string
	// Dispose releases the underlying resource. It must be safe to call
	// even if the resource is already degraded.
	Dispose(ctx context.Context) error
}

// Factory creates one fully connected, immediately usable resource.
type Factory[R Resource] func(ctx context.Context) (R, error)

// Pool manages a capacity-bounded set of expensive, stateful servers
// shared across concurrent requests.
//
// All servers are created up front by Initialize (all-or-nothing).
// Consumers borrow one server per request with Acquire and must return
// it exactly once with Release, supplying a health verdict. Unhealthy
// servers are disposed and not replaced, so tracked membership can
// shrink below capacity for the life of the pool. Shutdown is terminal
// and drains every tracked server.
//
// Accounting invariant: 0 <= Available() <= Tracked() <= Capacity().
type Pool[R Resource] struct {
	name     string
	capacity int
	factory  Factory[R]

	// available hands servers to waiting acquirers in FIFO order. Its
	// buffer size is the capacity, so a healthy release can only fail
	// to enqueue if something was released that the pool never lent.
	available chan R

	// done wakes blocked acquirers when the pool shuts down.
	done chan struct{}

	mu      sync.Mutex
	state   State
	tracked map[string]R
}

// New constructs an uninitialized pool. It fails synchronously if the
// capacity is not positive or no factory is provided.
func New[R Resource](name string, capacity int, factory Factory[R]) (*Pool[R], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if factory == nil {
		return nil, ErrNilFactory
	}

	p := &Pool[R]{
		name:      name,
		capacity:  capacity,
		factory:   factory,
		available: make(chan R, capacity),
		done:      make(chan struct{}),
		state:     StateUninitialized,
		tracked:   make(map[string]R, capacity),
	}
	logging.Info("Pool", "Pool '%s' created with capacity %d", name, capacity)
	return p, nil
}

// Name returns the diagnostic identifier of the pool.
func (p *Pool[R]) Name() string { return p.name }

// Capacity returns the maximum number of servers this pool ever creates.
func (p *Pool[R]) Capacity() int { return p.capacity }

// State returns the current lifecycle state.
func (p *Pool[R]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Available returns the number of servers currently not lent out.
func (p *Pool[R]) Available() int { return len(p.available) }

// Tracked returns the number of servers the pool currently owns,
// whether available or lent out.
func (p *Pool[R]) Tracked() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tracked)
}

// Initialize creates exactly Capacity servers via the factory, making
// each one available as it is created. Initialization is all-or-nothing:
// if any factory call fails, every server created during this attempt
// is disposed, the pool transitions to the terminal StateShutdown, and
// an *InitializationError wrapping the factory error is returned.
//
// Initialize must be called exactly once; a second call fails fast with
// a *StateError instead of silently re-running.
func (p *Pool[R]) Initialize(ctx context.Context) error {
	p.mu.Lock()
	if p.state != StateUninitialized {
		st := p.state
		p.mu.Unlock()
		return &StateError{Pool: p.name, Op: "initialize", State: st}
	}
	p.state = StateInitializing
	p.mu.Unlock()

	logging.Info("Pool", "Initializing pool '%s' with %d servers...", p.name, p.capacity)

	created := make([]R, 0, p.capacity)
	for i := 0; i < p.capacity; i++ {
		server, err := p.factory(ctx)
		if err != nil {
			logging.Error("Pool", err, "Pool '%s': factory call %d/%d failed", p.name, i+1, p.capacity)
			p.rollback(ctx, created)
			return &InitializationError{Pool: p.name, Err: err}
		}
		created = append(created, server)
		// The buffer holds capacity entries, so this never blocks here.
		p.available <- server
		logging.Info("Pool", "Pool '%s': created server %s (%d/%d)", p.name, server.ID(), i+1, p.capacity)
	}

	p.mu.Lock()
	if p.state != StateInitializing {
		// Shutdown intervened while a factory call was in flight. The
		// shutdown path saw an empty tracked set, so the servers created
		// during this attempt are ours to dispose.
		st := p.state
		p.mu.Unlock()
		logging.Warn("Pool", "Pool '%s': shut down during initialization, disposing %d servers", p.name, len(created))
		p.drainAvailable()
		for _, server := range created {
			p.dispose(ctx, server)
		}
		return &StateError{Pool: p.name, Op: "initialize", State: st}
	}
	for _, server := range created {
		p.tracked[server.ID()] = server
	}
	p.state = StateReady
	p.mu.Unlock()

	logging.Info("Pool", "Pool '%s' ready: %d servers available", p.name, p.capacity)
	return nil
}

// rollback disposes every server created during a failed initialization
// attempt and leaves the pool in the terminal StateShutdown. Disposal
// failures are logged, never propagated.
func (p *Pool[R]) rollback(ctx context.Context, created []R) {
	logging.Warn("Pool", "Pool '%s': rolling back %d servers created before the failure", p.name, len(created))

	// Empty the queue; its contents are exactly the created servers.
	p.drainAvailable()

	for _, server := range created {
		p.dispose(ctx, server)
	}

	p.mu.Lock()
	p.tracked = make(map[string]R)
	// Shutdown may have beaten the rollback here, in which case done is
	// already closed.
	if p.state != StateShutdown {
		p.state = StateShutdown
		close(p.done)
	}
	p.mu.Unlock()
}

// drainAvailable empties the queue without disposing anything; the
// caller disposes via its own snapshot of the servers involved.
func (p *Pool[R]) drainAvailable() {
	for {
		select {
		case <-p.available:
			continue
		default:
		}
		break
	}
}

// Acquire borrows one server from the pool. If none is available the
// calling goroutine blocks until another consumer releases a healthy
// server, the context is cancelled, or the pool shuts down. Waiters are
// served in FIFO order by the underlying queue. When the pool is not
// ready the call fails immediately with a *StateError; a cancelled wait
// leaves the queue untouched.
func (p *Pool[R]) Acquire(ctx context.Context) (R, error) {
	var zero R

	p.mu.Lock()
	st := p.state
	p.mu.Unlock()
	if st != StateReady {
		return zero, &StateError{Pool: p.name, Op: "acquire", State: st}
	}

	select {
	case server := <-p.available:
		logging.Debug("Pool", "Pool '%s': server %s acquired, %d left available", p.name, server.ID(), len(p.available))
		return server, nil
	case <-p.done:
		return zero, &StateError{Pool: p.name, Op: "acquire", State: StateShutdown}
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Release returns a borrowed server to the pool with the caller's
// health verdict. It must be called exactly once per successful
// Acquire and never reports an error to the caller:
//
//   - healthy: the server is re-enqueued for the next consumer. If the
//     queue is already full the release is an anomaly (double release
//     or a foreign server); the server is disposed and dropped.
//   - unhealthy: the server is disposed and permanently removed from
//     the tracked set. No replacement is created, so capacity stays
//     shrunk for the life of the pool.
//
// A nil server is a logged no-op. Disposal failures are logged and
// absorbed so the pool's accounting always makes forward progress.
func (p *Pool[R]) Release(ctx context.Context, server R, healthy bool) {
	var zero R
	if any(server) == any(zero) {
		logging.Warn("Pool", "Pool '%s': attempted to release a nil server, ignoring", p.name)
		return
	}

	p.mu.Lock()
	if p.state != StateReady {
		// Shutdown raced with this release. Shutdown disposes every
		// server it still tracks, so dispose here only if this one is
		// somehow still ours; otherwise dropping it avoids a double
		// dispose.
		_, stillTracked := p.tracked[server.ID()]
		if stillTracked {
			delete(p.tracked, server.ID())
		}
		st := p.state
		p.mu.Unlock()
		logging.Warn("Pool", "Pool '%s': release of server %s while %s", p.name, server.ID(), st)
		if stillTracked {
			p.dispose(ctx, server)
		}
		return
	}

	if !healthy {
		_, wasTracked := p.tracked[server.ID()]
		delete(p.tracked, server.ID())
		remaining := len(p.tracked)
		p.mu.Unlock()

		logging.Warn("Pool", "Pool '%s': unhealthy server %s will be disposed, %d servers remain tracked", p.name, server.ID(), remaining)
		if !wasTracked {
			logging.Warn("Pool", "Pool '%s': unhealthy server %s was not tracked; possible double release", p.name, server.ID())
		}
		p.dispose(ctx, server)
		return
	}

	select {
	case p.available <- server:
		p.mu.Unlock()
		logging.Debug("Pool", "Pool '%s': server %s released, %d available", p.name, server.ID(), len(p.available))
	default:
		// Queue full: this server cannot have been lent out by us while
		// the queue held capacity entries. Dispose and drop it.
		delete(p.tracked, server.ID())
		p.mu.Unlock()
		logging.Warn("Pool", "Pool '%s': release of server %s into a full queue; disposing it", p.name, server.ID())
		p.dispose(ctx, server)
	}
}

// Shutdown transitions the pool to the terminal StateShutdown and
// disposes every tracked server exactly once, including servers still
// lent out -- shutdown is final and does not wait for outstanding
// borrowers. Each disposal failure is logged independently and never
// prevents the remaining servers from being processed. Subsequent
// Acquire, Release, and Initialize calls fail immediately; a repeated
// Shutdown is a logged no-op.
func (p *Pool[R]) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.state == StateShutdown {
		p.mu.Unlock()
		logging.Debug("Pool", "Pool '%s': shutdown called on an already shut down pool", p.name)
		return
	}
	p.state = StateShutdown
	servers := make([]R, 0, len(p.tracked))
	for _, server := range p.tracked {
		servers = append(servers, server)
	}
	p.tracked = make(map[string]R)
	close(p.done)
	p.mu.Unlock()

	logging.Info("Pool", "Pool '%s': shutting down, disposing %d tracked servers", p.name, len(servers))

	// Drain the queue so no goroutine can still receive a server that
	// is about to be disposed. Disposal itself runs off the snapshot of
	// the tracked set, which also covers lent-out servers.
	p.drainAvailable()

	for _, server := range servers {
		p.dispose(ctx, server)
	}

	logging.Info("Pool", "Pool '%s': shutdown complete", p.name)
}

func (p *Pool[R]) dispose(ctx context.Context, server R) {
	if err := server.Dispose(ctx); err != nil {
		logging.Error("Pool", err, "Pool '%s': error disposing server %s", p.name, server.ID())
		return
	}
	logging.Debug("Pool", "Pool '%s': disposed server %s", p.name, server.ID())
}
