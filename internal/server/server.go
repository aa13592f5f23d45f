// Package server assembles the HTTP application: middleware chain, domain
// routes under /api and the health and readiness probes.
package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/vitalapp/api/internal/domain/alert"
	"github.com/vitalapp/api/internal/domain/appointment"
	"github.com/vitalapp/api/internal/domain/patient"
	"github.com/vitalapp/api/internal/domain/result"
	"github.com/vitalapp/api/internal/platform/ident"
	"github.com/vitalapp/api/internal/platform/middleware"
	"github.com/vitalapp/api/internal/platform/store"
)

const DefaultVersion = "1.0.0"

// Options configures New. The zero value serves the API with no external
// dependencies.
type Options struct {
	Version     string
	CORSOrigins []string
	BodyLimit   string
	RateLimit   middleware.RateLimitConfig

	// RequestTimeout bounds each /api request; zero disables it.
	RequestTimeout time.Duration

	// Database and Cache are probed by /ready; nil reports "connected".
	Database Pinger
	Cache    Pinger

	AlertEvents alert.Events
}

// App is the assembled server. Store is exposed so tests can reset it.
type App struct {
	Echo  *echo.Echo
	Store *store.Store
}

// New builds the echo instance with every route registered.
func New(logger zerolog.Logger, opts Options) *App {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	if opts.RateLimit.RequestsPerSecond <= 0 || opts.RateLimit.BurstSize <= 0 {
		opts.RateLimit = middleware.DefaultRateLimitConfig()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  opts.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}))
	e.Use(middleware.BodyLimit(opts.BodyLimit))

	s := store.New()
	ids := ident.New()

	patients := patient.NewService(patient.NewMemRepo(s), ids)
	appointments := appointment.NewService(appointment.NewMemRepo(s), ids)
	results := result.NewService(result.NewMemRepo(s), ids)
	alerts := alert.NewService(alert.NewMemRepo(s), ids, opts.AlertEvents)

	h := newProbes(opts.Version, opts.Database, opts.Cache)
	e.GET("/health", h.health)
	e.GET("/ready", h.ready)

	api := e.Group("/api",
		middleware.RateLimit(opts.RateLimit),
		middleware.RequestTimeout(opts.RequestTimeout),
		middleware.Audit(logger),
	)
	patient.NewHandler(patients).RegisterRoutes(api)
	appointment.NewHandler(appointments).RegisterRoutes(api)
	result.NewHandler(results).RegisterRoutes(api)
	alert.NewHandler(alerts).RegisterRoutes(api)

	return &App{Echo: e, Store: s}
}

// Route is one entry of the route table.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Routes lists the registered routes sorted by path, then method. Catch-all
// not-found routes added by echo groups are left out.
func (a *App) Routes() []Route {
	var out []Route
	for _, r := range a.Echo.Routes() {
		if r.Method == echo.RouteNotFound {
			continue
		}
		out = append(out, Route{Method: r.Method, Path: r.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}
