package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vitalapp/api/internal/platform/clock"
)

// Pinger is satisfied by the database and cache clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 5 * time.Second

const (
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

type readyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

type probes struct {
	version  string
	database Pinger
	cache    Pinger
	now      func() time.Time
}

func newProbes(version string, database, cache Pinger) *probes {
	return &probes{version: version, database: database, cache: cache, now: time.Now}
}

func (p *probes) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: clock.Stamp(p.now()),
		Version:   p.version,
	})
}

func (p *probes) ready(c echo.Context) error {
	ctx := c.Request().Context()
	resp := readyResponse{
		Status:   "ready",
		Database: check(ctx, p.database),
		Cache:    check(ctx, p.cache),
	}
	if resp.Database != statusConnected || resp.Cache != statusConnected {
		resp.Status = "not_ready"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// check reports "connected" for an unconfigured dependency.
func check(ctx context.Context, dep Pinger) string {
	if dep == nil {
		return statusConnected
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := dep.Ping(ctx); err != nil {
		return statusDisconnected
	}
	return statusConnected
}
