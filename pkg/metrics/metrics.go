// Package metrics exports hook and layout activity as Prometheus metrics.
//
// A Collector implements layout.Observer; pass it to layout.WithObserver:
//
//	c := metrics.New(metrics.WithNamespace("app"))
//	l := layout.New(root, layout.WithObserver(c))
//
// Metrics collected:
//   - hooks_render_passes_total: Counter of layout render passes
//   - hooks_rendered_components_total: Counter of component renders
//   - hooks_render_pass_duration_seconds: Histogram of render pass duration
//   - hooks_render_requests_total: Counter of re-renders requested by state changes
//   - hooks_mounted_components: Gauge of mounted component instances
//   - hooks_active_effects: Gauge of running effects
//   - hooks_effects_started_total: Counter of effect starts
//   - hooks_effects_stopped_total: Counter of effect stops by status
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/layout"
)

// Config configures a Collector.
type Config struct {
	// Namespace is the metrics namespace (default: "hooks").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "hooks",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector records hook and layout activity.
type Collector struct {
	renderPasses     prometheus.Counter
	renderedTotal    prometheus.Counter
	passDuration     prometheus.Histogram
	renderRequests   prometheus.Counter
	mountedInstances prometheus.Gauge
	activeEffects    prometheus.Gauge
	effectsStarted   prometheus.Counter
	effectsStopped   *prometheus.CounterVec
}

var _ layout.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics. It panics if the
// metrics are already registered with the registry, like promauto does.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}

	factory := promauto.With(config.Registry)

	return &Collector{
		renderPasses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_passes_total",
			Help:        "Total number of layout render passes",
			ConstLabels: config.ConstLabels,
		}),

		renderedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "rendered_components_total",
			Help:        "Total number of component renders",
			ConstLabels: config.ConstLabels,
		}),

		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_pass_duration_seconds",
			Help:        "Render pass duration in seconds, effect starts included",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		renderRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_requests_total",
			Help:        "Total number of re-renders requested by state changes",
			ConstLabels: config.ConstLabels,
		}),

		mountedInstances: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounted_components",
			Help:        "Number of mounted component instances",
			ConstLabels: config.ConstLabels,
		}),

		activeEffects: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_effects",
			Help:        "Number of started effects not yet stopped",
			ConstLabels: config.ConstLabels,
		}),

		effectsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_started_total",
			Help:        "Total number of effect runs started",
			ConstLabels: config.ConstLabels,
		}),

		effectsStopped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_stopped_total",
			Help:        "Total number of effect runs stopped, by status",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),
	}
}

// RenderScheduled implements hooks.Observer.
func (c *Collector) RenderScheduled(*hooks.LifeCycleHook) {
	c.renderRequests.Inc()
}

// EffectStarted implements hooks.Observer.
func (c *Collector) EffectStarted(*hooks.LifeCycleHook) {
	c.effectsStarted.Inc()
	c.activeEffects.Inc()
}

// EffectStopped implements hooks.Observer.
func (c *Collector) EffectStopped(_ *hooks.LifeCycleHook, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.effectsStopped.WithLabelValues(status).Inc()
	c.activeEffects.Dec()
}

// RenderPass implements layout.Observer.
func (c *Collector) RenderPass(rendered int, elapsed time.Duration) {
	c.renderPasses.Inc()
	c.renderedTotal.Add(float64(rendered))
	c.passDuration.Observe(elapsed.Seconds())
}

// Mounted implements layout.Observer.
func (c *Collector) Mounted(*hooks.LifeCycleHook) {
	c.mountedInstances.Inc()
}

// Unmounted implements layout.Observer.
func (c *Collector) Unmounted(*hooks.LifeCycleHook) {
	c.mountedInstances.Dec()
}
