package hooks

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/vango-dev/hooks/internal/errors"
	"github.com/vango-dev/hooks/pkg/vdom"
)

// renderCounter records render requests.
type renderCounter struct {
	mu sync.Mutex
	n  int
}

func (r *renderCounter) ScheduleRender(*LifeCycleHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.n++
}

func (r *renderCounter) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// syncBuffer is a bytes.Buffer safe for concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// recorder is an ordered, concurrency-safe event log.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(e string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func newTestHook(t *testing.T, opts ...HookOption) (*LifeCycleHook, *renderCounter) {
	t.Helper()
	sched := &renderCounter{}
	h := NewLifeCycleHook(vdom.Func("Test", nil), nil, sched, opts...)
	t.Cleanup(func() { h.WillUnmount(context.Background()) })
	return h, sched
}

func testLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

// render runs fn as one render of h, then starts the registered effects.
func render(h *LifeCycleHook, fn func()) {
	h.Render(fn)
	h.LayoutDidRender(context.Background())
}

func expectHookPanic(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %s", code)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T: %v", r, r)
		}
		if got := errors.Code(err); got != code {
			t.Fatalf("panic code = %q, want %q (%v)", got, code, err)
		}
	}()
	fn()
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
