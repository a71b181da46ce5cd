package app

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/specialistvlad/fgviewer/internal/viewer"
)

// Loader reads snapshots from capture paths.
type Loader interface {
	Load(ctx context.Context, paths ...string) ([]*fginfo.FrameGraphInfo, error)
}

// DialFunc opens the emitter used to publish snapshots.
type DialFunc func(ctx context.Context, url, namespace string, timeout time.Duration) (viewer.Emitter, error)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   Loader
	store    *viewer.Store
	registry *prometheus.Registry
	dial     DialFunc
}

// Option customizes an App.
type Option func(*App)

// WithDialer replaces the socket.io dialer, e.g. with a fake in tests.
func WithDialer(dial DialFunc) Option {
	return func(a *App) { a.dial = dial }
}

// NewApp is the constructor for the main application. Rendered output goes to
// outW, logs go to logW. The app owns its logger, store and metrics registry.
func NewApp(outW, logW io.Writer, cfg *Config, loader Loader, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := viewer.NewMetrics()
	metrics.MustRegister(registry)

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		store:    viewer.NewStore(metrics),
		registry: registry,
		dial:     dialSocketIO,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Store returns the application's snapshot store. This is primarily for testing.
func (a *App) Store() *viewer.Store {
	return a.store
}

func dialSocketIO(ctx context.Context, url, namespace string, timeout time.Duration) (viewer.Emitter, error) {
	emitter, err := viewer.DialSocketIO(ctx, url, namespace, timeout)
	if err != nil {
		return nil, err
	}
	return emitter, nil
}
