package schemactx

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
)

// InvalidateChannel is the NOTIFY channel migrations and admin tooling use
// to signal that the catalog schema changed.
const InvalidateChannel = "invalidate_schema"

// Listener holds a dedicated LISTEN connection and invalidates the schema
// cache whenever a notification arrives. The receive loop is the sole
// goroutine that touches the pgx connection.
type Listener struct {
	connString string
	cache      *Cache

	connMu sync.Mutex
	conn   *pgx.Conn

	cancelLoop context.CancelFunc
	loopDone   chan struct{}
}

// NewListener creates a listener bound to the given cache.
func NewListener(connString string, cache *Cache) *Listener {
	return &Listener{connString: connString, cache: cache}
}

// Start establishes the LISTEN connection and begins receiving.
func (l *Listener) Start(ctx context.Context) error {
	conn, err := l.connect(ctx)
	if err != nil {
		return fmt.Errorf("connect for LISTEN: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancelLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	slog.Info("Schema invalidation listener started", "channel", InvalidateChannel)
	return nil
}

func (l *Listener) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return nil, err
	}
	sanitized := pgx.Identifier{InvalidateChannel}.Sanitize()
	if _, err := conn.Exec(ctx, "LISTEN "+sanitized); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("LISTEN %s: %w", sanitized, err)
	}
	return conn, nil
}

func (l *Listener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()

		if conn == nil {
			l.reconnect(ctx)
			continue
		}

		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("NOTIFY receive error", "error", err)
			l.reconnect(ctx)
			continue
		}

		slog.Debug("Schema invalidation received", "payload", notification.Payload)
		l.cache.Invalidate()
	}
}

// reconnect re-establishes the LISTEN connection with exponential backoff.
func (l *Listener) reconnect(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := l.connect(ctx)
		if err != nil {
			slog.Error("LISTEN reconnect failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, 30*time.Second)
			continue
		}
		l.conn = conn
		slog.Info("Schema invalidation listener reconnected")
		return
	}
}

// Stop signals the receive loop to exit, waits for it, then closes the
// connection.
func (l *Listener) Stop(ctx context.Context) {
	if l.cancelLoop != nil {
		l.cancelLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
