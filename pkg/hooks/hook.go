package hooks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/vango-dev/hooks/internal/errors"
	"github.com/vango-dev/hooks/pkg/vdom"
)

// SlotKind identifies the kind of cell stored in a hook slot.
// A slot keeps its kind for the lifetime of the component instance.
type SlotKind uint8

const (
	SlotState SlotKind = iota + 1
	SlotReducer
	SlotMemo
	SlotRef
	SlotEffect
	SlotDebug
)

// String returns a human-readable name for the slot kind.
func (k SlotKind) String() string {
	switch k {
	case SlotState:
		return "State"
	case SlotReducer:
		return "Reducer"
	case SlotMemo:
		return "Memo"
	case SlotRef:
		return "Ref"
	case SlotEffect:
		return "Effect"
	case SlotDebug:
		return "DebugValue"
	default:
		return "Unknown"
	}
}

type slot struct {
	kind  SlotKind
	value any
}

// StopEffect stops a running effect and waits for its cleanup to finish.
// It is safe to call more than once; later calls return the first result.
type StopEffect func() error

// StartEffect starts an effect after render and returns its stop procedure.
type StartEffect func(ctx context.Context) StopEffect

// Scheduler receives render requests from hooks.
type Scheduler interface {
	ScheduleRender(h *LifeCycleHook)
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(h *LifeCycleHook)

// ScheduleRender implements Scheduler.
func (f SchedulerFunc) ScheduleRender(h *LifeCycleHook) { f(h) }

// Observer receives life-cycle notifications. Implementations must be safe
// for concurrent use.
type Observer interface {
	RenderScheduled(h *LifeCycleHook)
	EffectStarted(h *LifeCycleHook)
	EffectStopped(h *LifeCycleHook, err error)
}

type noopObserver struct{}

func (noopObserver) RenderScheduled(*LifeCycleHook)      {}
func (noopObserver) EffectStarted(*LifeCycleHook)        {}
func (noopObserver) EffectStopped(*LifeCycleHook, error) {}

// ContextProvider is a rendered provider registered on a hook.
type ContextProvider interface {
	ContextKey() any
	ContextValue() any
}

type pendingEffect struct {
	slot  int
	start StartEffect
}

// LifeCycleHook is the per-component-instance slot store. It holds hook
// state across renders, forwards render requests to the renderer, and owns
// the effects started by the component.
//
// Slots are addressed by call order: a cursor is reset by WillRender and
// advanced by every UseSlot call. The kind of each slot is recorded on the
// first render and checked on every later render.
type LifeCycleHook struct {
	id        uint64
	component vdom.Component
	parent    *LifeCycleHook
	scheduler Scheduler
	observer  Observer
	logger    *slog.Logger

	// Render-goroutine state.
	slots       []slot
	cursor      int
	rendering   bool
	renderCount int
	prevCurrent *LifeCycleHook

	effectsMu sync.Mutex
	pending   []pendingEffect
	stops     map[int]StopEffect

	providersMu sync.RWMutex
	providers   map[any]ContextProvider

	unmounted atomic.Bool
}

// HookOption configures a LifeCycleHook.
type HookOption func(*LifeCycleHook)

// WithObserver sets the observer notified of renders and effects.
func WithObserver(o Observer) HookOption {
	return func(h *LifeCycleHook) {
		if o != nil {
			h.observer = o
		}
	}
}

// WithHookLogger sets the logger used for effect failures and diagnostics.
func WithHookLogger(l *slog.Logger) HookOption {
	return func(h *LifeCycleHook) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewLifeCycleHook creates the hook for one component instance. parent is
// the hook of the nearest enclosing component, or nil for the root.
func NewLifeCycleHook(component vdom.Component, parent *LifeCycleHook, scheduler Scheduler, opts ...HookOption) *LifeCycleHook {
	h := &LifeCycleHook{
		id:        nextID(),
		component: component,
		parent:    parent,
		scheduler: scheduler,
		observer:  noopObserver{},
		stops:     make(map[int]StopEffect),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = Logger()
	}
	h.logger = h.logger.With("hook_id", h.id, "component", vdom.NameOf(component))
	return h
}

// ID returns the unique identifier for this hook.
func (h *LifeCycleHook) ID() uint64 {
	return h.id
}

// Component returns the owning component, for diagnostics.
func (h *LifeCycleHook) Component() vdom.Component {
	return h.component
}

// SetComponent replaces the component value after a re-render of the parent
// produced a new value of the same type.
func (h *LifeCycleHook) SetComponent(c vdom.Component) {
	h.component = c
}

// Parent returns the hook of the enclosing component, or nil.
func (h *LifeCycleHook) Parent() *LifeCycleHook {
	return h.parent
}

// Logger returns the hook's logger.
func (h *LifeCycleHook) Logger() *slog.Logger {
	return h.logger
}

// IsUnmounted reports whether WillUnmount has been called.
func (h *LifeCycleHook) IsUnmounted() bool {
	return h.unmounted.Load()
}

// IsRendering reports whether the hook is between WillRender and DidRender.
func (h *LifeCycleHook) IsRendering() bool {
	return h.rendering
}

// SlotCount returns the number of slots claimed so far.
func (h *LifeCycleHook) SlotCount() int {
	return len(h.slots)
}

func (h *LifeCycleHook) String() string {
	return fmt.Sprintf("%s#%d", vdom.NameOf(h.component), h.id)
}

// =============================================================================
// Render phase
// =============================================================================

// WillRender starts a render: it resets the slot cursor, clears context
// providers registered by the previous render, drops effect starters no
// LayoutDidRender consumed and binds h as the current hook of the calling
// goroutine.
func (h *LifeCycleHook) WillRender() {
	if h.rendering {
		panic(errors.New("E002").WithDetailf("%s is already rendering", h))
	}
	h.cursor = 0
	h.rendering = true
	h.dropPending()

	h.providersMu.Lock()
	h.providers = nil
	h.providersMu.Unlock()

	h.prevCurrent = setCurrentHook(h)
}

// DidRender ends a render. After the first render it verifies that the same
// number of hooks was called, panicking with E002 otherwise.
func (h *LifeCycleHook) DidRender() {
	h.unbind()

	if h.renderCount > 0 && h.cursor != len(h.slots) {
		panic(errors.New("E002").WithDetailf("%s: expected %d hooks, got %d", h, len(h.slots), h.cursor))
	}
	h.renderCount++
}

// unbind restores the goroutine's previous current hook.
func (h *LifeCycleHook) unbind() {
	if !h.rendering {
		return
	}
	h.rendering = false
	setCurrentHook(h.prevCurrent)
	h.prevCurrent = nil
}

// Render runs fn between WillRender and DidRender. If fn or DidRender
// panics, the goroutine binding is restored and the effects registered by
// the failed render are dropped before the panic propagates.
func (h *LifeCycleHook) Render(fn func()) {
	h.WillRender()
	completed := false
	defer func() {
		if !completed {
			h.AbortRender()
		}
	}()
	fn()
	h.DidRender()
	completed = true
}

// AbortRender ends a render that did not complete: it unbinds h and drops
// the effect starters registered so far. Renderers that call WillRender
// directly call it when the component's render fails.
func (h *LifeCycleHook) AbortRender() {
	h.unbind()
	h.dropPending()
}

func (h *LifeCycleHook) dropPending() {
	h.effectsMu.Lock()
	h.pending = nil
	h.effectsMu.Unlock()
}

// UseSlot returns the value of the current slot, creating it with create on
// the first render. It panics with E001 outside a render and with E002 when
// the slot kind or count differs from the first render.
func (h *LifeCycleHook) UseSlot(kind SlotKind, create func() any) any {
	if !h.rendering {
		panic(errors.New("E001").WithDetailf("%s hook used while %s is not rendering", kind, h))
	}

	idx := h.cursor
	h.cursor++

	if idx < len(h.slots) {
		s := h.slots[idx]
		if s.kind != kind {
			panic(errors.New("E002").WithDetailf("%s: slot %d expected %s, got %s", h, idx, s.kind, kind))
		}
		return s.value
	}

	if h.renderCount > 0 {
		panic(errors.New("E002").WithDetailf("%s: extra %s hook at slot %d", h, kind, idx))
	}

	value := create()
	h.slots = append(h.slots, slot{kind: kind, value: value})
	return value
}

// useSlot is the typed form of UseSlot.
func useSlot[C any](h *LifeCycleHook, kind SlotKind, create func() C) C {
	v := h.UseSlot(kind, func() any { return create() })
	c, ok := v.(C)
	if !ok {
		panic(errors.New("E004").WithDetailf("%s: slot %d holds %T", h, h.cursor-1, v))
	}
	return c
}

// ScheduleRender requests a future re-render of the owning component.
// It is safe to call from any goroutine and is ignored after unmount.
func (h *LifeCycleHook) ScheduleRender() {
	if h.unmounted.Load() {
		if DebugMode {
			h.logger.Debug("render requested after unmount ignored")
		}
		return
	}
	h.observer.RenderScheduled(h)
	if h.scheduler != nil {
		h.scheduler.ScheduleRender(h)
	}
}

// =============================================================================
// Effects
// =============================================================================

// AddEffect registers an effect starter for the slot claimed last,
// replacing a starter already registered for that slot. Starters run in
// registration order when the renderer calls LayoutDidRender.
func (h *LifeCycleHook) AddEffect(start StartEffect) {
	if !h.rendering {
		panic(errors.New("E001").WithDetailf("effect added while %s is not rendering", h))
	}
	h.effectsMu.Lock()
	defer h.effectsMu.Unlock()
	p := pendingEffect{slot: h.cursor - 1, start: start}
	for i := range h.pending {
		if h.pending[i].slot == p.slot {
			h.pending[i] = p
			return
		}
	}
	h.pending = append(h.pending, p)
}

// HasPendingEffects reports whether starters are waiting for LayoutDidRender.
func (h *LifeCycleHook) HasPendingEffects() bool {
	h.effectsMu.Lock()
	defer h.effectsMu.Unlock()
	return len(h.pending) > 0
}

// LayoutDidRender runs the effect starters registered during the last
// render and records their stop procedures for unmount.
func (h *LifeCycleHook) LayoutDidRender(ctx context.Context) {
	h.effectsMu.Lock()
	pending := h.pending
	h.pending = nil
	h.effectsMu.Unlock()

	if h.unmounted.Load() {
		return
	}

	for _, p := range pending {
		stop := p.start(ctx)
		h.observer.EffectStarted(h)

		h.effectsMu.Lock()
		h.stops[p.slot] = stop
		h.effectsMu.Unlock()
	}
}

// WillUnmount stops every running effect, last slot first, and marks the
// hook unmounted. Stop failures are logged and swallowed.
func (h *LifeCycleHook) WillUnmount(ctx context.Context) {
	if h.unmounted.Swap(true) {
		return
	}

	h.effectsMu.Lock()
	h.pending = nil
	stops := h.stops
	h.stops = make(map[int]StopEffect)
	h.effectsMu.Unlock()

	for i := len(h.slots) - 1; i >= 0; i-- {
		stop, ok := stops[i]
		if !ok {
			continue
		}
		// stop logs its own failure
		_ = stop()
	}

	if DebugMode {
		h.logger.DebugContext(ctx, "unmounted", "effects", len(stops))
	}
}

// =============================================================================
// Context providers
// =============================================================================

// SetContextProvider registers p for descendants rendered after it.
func (h *LifeCycleHook) SetContextProvider(p ContextProvider) {
	h.providersMu.Lock()
	defer h.providersMu.Unlock()
	if h.providers == nil {
		h.providers = make(map[any]ContextProvider)
	}
	h.providers[p.ContextKey()] = p
}

// GetContextProvider returns the nearest provider registered for key on h
// or one of its ancestors.
func (h *LifeCycleHook) GetContextProvider(key any) (ContextProvider, bool) {
	for cur := h; cur != nil; cur = cur.parent {
		cur.providersMu.RLock()
		p, ok := cur.providers[key]
		cur.providersMu.RUnlock()
		if ok {
			return p, true
		}
	}
	return nil, false
}
