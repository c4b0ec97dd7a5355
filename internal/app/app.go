package app

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"securedb/internal/crypto"
	"securedb/internal/events"
	"securedb/internal/logger"
	"securedb/internal/metrics"
	"securedb/internal/store"
)

// App bundles the store and its observers for the CLI.
type App struct {
	Config   Config
	Log      logger.Logger
	Store    *store.Store
	Metrics  *metrics.Collector
	Registry *prometheus.Registry
}

// New constructs the dependency graph from cfg and opens the database with
// key. Metrics are attached before the store bootstraps its file.
func New(cfg Config, key string) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logger.NewLogger(level)

	c, err := crypto.ByName(cfg.Cipher)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	m := metrics.New()
	if err := m.Register(reg); err != nil {
		return nil, errors.Wrap(err, "register metrics")
	}

	opts := []store.Option{
		store.WithCipher(c),
		store.WithLogger(log),
		store.WithFileMode(cfg.FileMode),
	}
	for _, k := range events.Kinds {
		opts = append(opts, store.WithSubscriber(k, m.Handle))
	}

	s, err := store.New(cfg.Dir, cfg.File, key, opts...)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		Log:      log,
		Store:    s,
		Metrics:  m,
		Registry: reg,
	}, nil
}

// Close flushes metrics to the configured textfile, if any.
func (a *App) Close() error {
	if a.Config.MetricsFile == "" {
		return nil
	}
	return metrics.WriteTextfile(a.Config.MetricsFile, a.Registry)
}
