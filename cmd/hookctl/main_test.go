package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vango-dev/hooks/internal/errors"
	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/metrics"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() {
		hooks.DebugMode = false
		hooks.SetLogger(nil)
	})

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "hooks.toml")
}

func TestDemoCounter(t *testing.T) {
	out, _, err := execute(t, "--config", missingConfig(t), "demo", "counter", "--clicks", "2", "--theme", "dark")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := "mounted 0\ncleaned 0\nmounted 1\ncleaned 1\nmounted 2\ncleaned 2\n"
	if !strings.Contains(out, want) {
		t.Errorf("output missing effect log:\n%s", out)
	}
	if !strings.Contains(out, "[dark] clicked 2 times") {
		t.Errorf("output missing rendered text:\n%s", out)
	}
}

func TestDemoClock(t *testing.T) {
	out, _, err := execute(t, "--config", missingConfig(t), "demo", "clock", "--ticks", "2", "--interval", "1ms")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "tick 2") || !strings.Contains(out, "clock stopped") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestDemoClockRejectsInterval(t *testing.T) {
	_, _, err := execute(t, "--config", missingConfig(t), "demo", "clock", "--interval", "0s")
	if err == nil || !strings.Contains(err.Error(), "interval") {
		t.Errorf("err = %v, want interval error", err)
	}
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooks.toml")
	data := "log_level = \"warn\"\n\n[metrics]\nnamespace = \"app\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, "--config", path, "config")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"# loaded from " + path, `log_level = "warn"`, `namespace = "app"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugFlagOverridesConfig(t *testing.T) {
	out, _, err := execute(t, "--config", missingConfig(t), "--debug", "config")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "# defaults") || !strings.Contains(out, `log_level = "debug"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooks.toml")
	if err := os.WriteFile(path, []byte("log_level = [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "--config", path, "version")
	if errors.Code(err) != "E040" {
		t.Errorf("err = %v, want E040", err)
	}
}

func TestVersionShort(t *testing.T) {
	out, _, err := execute(t, "--config", missingConfig(t), "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestMetricsRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.New(metrics.WithRegistry(reg))
	c.RenderPass(3, 0)

	srv := httptest.NewServer(metricsRouter(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body.String(), "hooks_rendered_components_total 3") {
		t.Errorf("metrics body missing render count:\n%s", body.String())
	}

	health, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	health.Body.Close()
	if health.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", health.StatusCode)
	}
}
