package database

import (
	"context"
	stdsql "database/sql"
	"time"
)

// PoolStats summarizes one connection pool.
type PoolStats struct {
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	WaitDurationMS  int64 `json:"wait_duration_ms"`
	MaxOpenConns    int   `json:"max_open_conns"`
}

// HealthStatus reports connectivity and stats for both pools. The app and
// admin pools fail independently; a role misconfiguration can break one
// while the other keeps answering.
type HealthStatus struct {
	Status         string    `json:"status"`
	ResponseTimeMS int64     `json:"response_time_ms"`
	App            PoolStats `json:"app_pool"`
	Admin          PoolStats `json:"admin_pool"`
}

// Health pings both pools and returns their statistics.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	for _, db := range []*stdsql.DB{c.app, c.admin} {
		if err := db.PingContext(ctx); err != nil {
			return &HealthStatus{
				Status:         "unhealthy",
				ResponseTimeMS: time.Since(start).Milliseconds(),
			}, err
		}
	}

	return &HealthStatus{
		Status:         "healthy",
		ResponseTimeMS: time.Since(start).Milliseconds(),
		App:            poolStats(c.app),
		Admin:          poolStats(c.admin),
	}, nil
}

func poolStats(db *stdsql.DB) PoolStats {
	s := db.Stats()
	return PoolStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
		WaitCount:       s.WaitCount,
		WaitDurationMS:  s.WaitDuration.Milliseconds(),
		MaxOpenConns:    s.MaxOpenConnections,
	}
}
