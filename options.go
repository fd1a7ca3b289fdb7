package nexus

import (
	"io/fs"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/qube-ai/nexus/recommend"
	"github.com/qube-ai/nexus/source"
)

// engineConfig collects the configuration applied by Options.
type engineConfig struct {
	logger   *slog.Logger
	tracer   trace.TracerProvider
	meter    metric.MeterProvider
	adapters []source.Adapter
	dataDir  string
	weights  *recommend.Weights
}

// Option configures the Engine.
type Option func(*engineConfig)

// WithLogger sets the logger used by the engine and its components.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithDataDir points the default source catalog at dir. Ignored when
// WithAdapters or WithSources is also given.
func WithDataDir(dir string) Option {
	return func(c *engineConfig) {
		c.dataDir = dir
	}
}

// WithSources replaces the default catalog with the given entries read
// from fsys. Tests use this with fstest.MapFS fixtures.
func WithSources(fsys fs.FS, entries []source.Entry) Option {
	return func(c *engineConfig) {
		c.adapters = source.Adapters(fsys, entries)
	}
}

// WithAdapters replaces the default catalog with arbitrary adapters.
func WithAdapters(adapters []source.Adapter) Option {
	return func(c *engineConfig) {
		c.adapters = adapters
	}
}

// WithTracerProvider enables tracing of loads and recommendations.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *engineConfig) {
		c.tracer = tp
	}
}

// WithMeterProvider enables load and recommendation metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *engineConfig) {
		c.meter = mp
	}
}

// WithWeights overrides the recommendation scoring configuration.
func WithWeights(w recommend.Weights) Option {
	return func(c *engineConfig) {
		c.weights = &w
	}
}
