package metrics

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/layout"
	"github.com/vango-dev/hooks/pkg/vdom"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestCollectorObservesLayout(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(WithRegistry(reg), WithNamespace("test"))

	var set hooks.Setter[int]
	child := vdom.Func("Child", func() *vdom.VNode {
		hooks.UseEffect(hooks.EffectFunc(func() hooks.Cleanup { return nil }), hooks.NoDeps)
		return vdom.Text("child")
	})
	root := vdom.Func("Root", func() *vdom.VNode {
		var v int
		v, set = hooks.UseState(0)
		hooks.UseEffect(hooks.EffectFunc(func() hooks.Cleanup { return nil }), hooks.Deps{v})
		return vdom.Fragment(child)
	})

	l := layout.New(root, layout.WithObserver(c))
	if err := l.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := gaugeValue(t, c.mountedInstances); got != 2 {
		t.Errorf("mounted = %v, want 2", got)
	}
	if got := gaugeValue(t, c.activeEffects); got != 2 {
		t.Errorf("active effects = %v, want 2", got)
	}

	set.Set(1)
	if _, err := l.Render(context.Background()); err != nil {
		t.Fatal(err)
	}

	if got := counterValue(t, c.renderRequests); got != 1 {
		t.Errorf("render requests = %v, want 1", got)
	}
	if got := counterValue(t, c.renderPasses); got != 2 {
		t.Errorf("render passes = %v, want 2", got)
	}
	if got := counterValue(t, c.renderedTotal); got != 4 {
		t.Errorf("rendered components = %v, want 4", got)
	}
	if got := histogramCount(t, c.passDuration); got != 2 {
		t.Errorf("pass duration samples = %d, want 2", got)
	}
	if got := counterValue(t, c.effectsStarted); got != 3 {
		t.Errorf("effects started = %v, want 3", got)
	}

	l.Close(context.Background())

	if got := gaugeValue(t, c.mountedInstances); got != 0 {
		t.Errorf("mounted after close = %v, want 0", got)
	}
	if got := gaugeValue(t, c.activeEffects); got != 0 {
		t.Errorf("active effects after close = %v, want 0", got)
	}
	if got := counterValue(t, c.effectsStopped.WithLabelValues("ok")); got != 3 {
		t.Errorf("effects stopped ok = %v, want 3", got)
	}
}

func TestEffectStoppedErrorStatus(t *testing.T) {
	c := New(WithRegistry(prometheus.NewRegistry()))

	c.EffectStarted(nil)
	c.EffectStopped(nil, stderrors.New("boom"))

	if got := counterValue(t, c.effectsStopped.WithLabelValues("error")); got != 1 {
		t.Errorf("error stops = %v, want 1", got)
	}
	if got := gaugeValue(t, c.activeEffects); got != 0 {
		t.Errorf("active effects = %v, want 0", got)
	}
}

func TestMetricNames(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("ui"),
		WithConstLabels(prometheus.Labels{"service": "demo"}),
		WithBuckets([]float64{0.001, 0.01}),
	)
	c.RenderPass(1, 0)
	c.EffectStopped(nil, nil)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	names := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		names[f.GetName()] = f
	}
	for _, want := range []string{
		"app_ui_render_passes_total",
		"app_ui_rendered_components_total",
		"app_ui_render_pass_duration_seconds",
		"app_ui_render_requests_total",
		"app_ui_mounted_components",
		"app_ui_active_effects",
		"app_ui_effects_started_total",
		"app_ui_effects_stopped_total",
	} {
		if _, ok := names[want]; !ok {
			t.Errorf("metric %s not registered", want)
		}
	}

	h := names["app_ui_render_pass_duration_seconds"].GetMetric()[0]
	if got := len(h.GetHistogram().GetBucket()); got != 2 {
		t.Errorf("buckets = %d, want 2", got)
	}
	if got := h.GetLabel()[0].GetValue(); got != "demo" {
		t.Errorf("const label = %q, want demo", got)
	}
}
