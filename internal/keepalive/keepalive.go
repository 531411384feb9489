// Package keepalive produces a periodic filler signal that keeps an idle host
// connection from being closed. Cancellation is cooperative through the
// context; there is no shared mutable flag.
package keepalive

import (
	"context"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-ps"
)

const (
	// DefaultInterval is the spacing between heartbeats.
	DefaultInterval = 1 * time.Second

	// Beat is the filler payload sent on each tick.
	Beat = " "

	// parentPollInterval is how often WatchParent checks the host process.
	parentPollInterval = 5 * time.Second
)

// Heartbeat emits a filler beat at a fixed interval until its context is
// cancelled. A stopped heartbeat is restarted by calling Run again with a
// fresh context.
type Heartbeat struct {
	interval time.Duration
	log      hclog.Logger
}

// New creates a heartbeat with the given interval; zero means DefaultInterval.
func New(interval time.Duration, logger hclog.Logger) *Heartbeat {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Heartbeat{interval: interval, log: logger.Named("keepalive")}
}

// Run streams beats on the returned channel until ctx is cancelled. The
// channel is closed on cancellation, so callers can range over it.
func (h *Heartbeat) Run(ctx context.Context) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				h.log.Debug("heartbeat stopped", "reason", ctx.Err())
				return
			case <-ticker.C:
				select {
				case out <- Beat:
				case <-ctx.Done():
					h.log.Debug("heartbeat stopped", "reason", ctx.Err())
					return
				}
			}
		}
	}()

	return out
}

// WatchParent returns a context that is cancelled when the given process
// exits, layered over the parent context. Passing 0 watches this process's
// parent. An orphaned plugin uses this to stop beating once the host is gone.
func WatchParent(ctx context.Context, pid int, logger hclog.Logger) context.Context {
	if pid == 0 {
		pid = os.Getppid()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	log := logger.Named("keepalive")

	watched, cancel := context.WithCancel(ctx)

	go func() {
		defer cancel()

		ticker := time.NewTicker(parentPollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				proc, err := ps.FindProcess(pid)
				if err != nil || proc == nil {
					log.Debug("host process gone", "pid", pid)
					return
				}
			}
		}
	}()

	return watched
}
