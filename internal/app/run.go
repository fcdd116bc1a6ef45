package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/darrenyao/dingtalk-agent-sdk/pkg/logging"
)

// shutdownTimeout bounds how long draining the pools may take once a
// shutdown signal arrives.
const shutdownTimeout = 30 * time.Second

// Run executes the application: it initializes every pool (startup is
// all-or-nothing; a pool that cannot reach full capacity aborts the
// start), connects the DingTalk stream client, and blocks until the
// context is cancelled or a termination signal arrives. Shutdown is
// orderly: the stream client stops first so no new messages arrive,
// then every pool drains.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Application", "Initializing MCP pools: %v", a.registry.Names())
	if err := a.registry.InitializeAll(ctx); err != nil {
		logging.Error("Application", err, "Pool initialization failed")
		// Pools that did come up must not leak their servers.
		a.shutdown()
		return err
	}

	if err := a.stream.Start(ctx); err != nil {
		logging.Error("Application", err, "DingTalk stream client failed to start")
		a.shutdown()
		return err
	}

	logging.Info("Application", "Application started successfully, waiting for shutdown signal")
	<-ctx.Done()

	logging.Info("Application", "Shutdown initiated")
	a.shutdown()
	logging.Info("Application", "Shutdown complete")
	return nil
}

// shutdown stops the stream client and drains every pool. It never
// fails; individual disposal errors are logged by the pools.
func (a *Application) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	a.stream.Stop()
	a.registry.ShutdownAll(shutdownCtx)
}
