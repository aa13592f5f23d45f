package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Probe checks a pgx pool for the readiness endpoint.
type Probe struct {
	pool *pgxpool.Pool
}

func NewProbe(pool *pgxpool.Pool) *Probe {
	return &Probe{pool: pool}
}

// Ping acquires a connection and runs a round trip.
func (p *Probe) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// PoolStats represents database connection pool statistics.
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
}

// Stats returns connection pool statistics for logging.
func (p *Probe) Stats() PoolStats {
	stat := p.pool.Stat()
	return PoolStats{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
	}
}

func (p *Probe) Close() {
	p.pool.Close()
}
