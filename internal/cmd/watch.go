package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/kubernetes"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// watchContext returns a context that is cancelled on SIGINT or SIGTERM.
func watchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// redrawLoop calls draw with the first snapshot right away and afterwards
// with the latest snapshot at most once per interval. Snapshots that only
// report a broken watch are logged and skipped. It returns when ctx is done
// or, after drawing any pending snapshot, when the channel closes.
func redrawLoop(ctx context.Context, snapshots <-chan kubernetes.Snapshot, interval time.Duration, draw func([]camelapp.App) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		pending []camelapp.App
		dirty   bool
		drawn   bool
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-snapshots:
			if !ok {
				if dirty {
					return draw(pending)
				}
				return nil
			}
			if snap.Err != nil {
				output.Warn("watch interrupted, reconnecting", "error", snap.Err)
				continue
			}
			pending, dirty = snap.Apps, true
			if !drawn {
				drawn, dirty = true, false
				if err := draw(pending); err != nil {
					return err
				}
			}
		case <-ticker.C:
			if !dirty {
				continue
			}
			dirty = false
			if err := draw(pending); err != nil {
				return err
			}
		}
	}
}
