// Package pool implements a bounded pool of expensive, stateful
// servers shared across concurrent requests.
//
// # Lifecycle
//
// A pool is constructed uninitialized, transitions to ready through a
// single all-or-nothing Initialize call, and ends in a terminal
// shutdown state:
//
//	uninitialized --Initialize(ok)--> ready --Shutdown--> shutdown
//	uninitialized --Initialize(fail)--> shutdown
//
// Ready is the only state in which Acquire and Release succeed. A pool
// that fails to initialize disposes everything it created and is not
// reusable; the owner must construct a new pool.
//
// # Borrowing model
//
// Consumers call Acquire to borrow one server for exactly one unit of
// work and Release exactly once afterwards, passing a health verdict.
// Healthy servers are recycled in FIFO order; unhealthy servers are
// disposed and not replaced, so the tracked membership can only shrink
// between Initialize and Shutdown. Acquire blocks cooperatively when
// all servers are lent out and honors context cancellation without
// perturbing the queue.
//
// # Error severity
//
// Fatal outcomes (invalid construction, initialization failure) are
// reported as errors the owner must act on. Per-server disposal
// failures and release anomalies are absorbed and logged so that one
// misbehaving server never blocks pool accounting or an in-flight
// request.
//
// The package also provides a Registry, a thin name-to-pool mapping
// used to select a pool per request route, with helpers to initialize
// and shut down all registered pools.
package pool
