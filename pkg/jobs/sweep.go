package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/labdex/labdex/ent"
	"github.com/labdex/labdex/ent/session"
)

// Sweeper periodically hard-deletes expired browser sessions. It runs on
// the admin Ent client: expired rows span every tenant, so the sweep
// legitimately bypasses row-level policy.
type Sweeper struct {
	client   *ent.Client
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSweeper creates a sweeper over the admin client.
func NewSweeper(client *ent.Client, interval time.Duration) *Sweeper {
	return &Sweeper{client: client, interval: interval}
}

// Start launches the sweep loop. An immediate sweep runs before the
// first tick so restarts do not postpone cleanup by a full interval.
func (s *Sweeper) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Session sweeper started", "interval", s.interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Session sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep deletes sessions past their expiry. Revoked-but-unexpired rows
// stay until expiry so audit queries can still resolve them.
func (s *Sweeper) sweep(ctx context.Context) {
	count, err := s.client.Session.Delete().
		Where(session.ExpiresAtLT(time.Now())).
		Exec(ctx)
	if err != nil {
		slog.Error("Session sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Session sweep deleted expired sessions", "count", count)
	}
}
