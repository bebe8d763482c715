package layout

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/hooks/internal/errors"
	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/vdom"
)

const tracerName = "github.com/vango-dev/hooks/pkg/layout"

// Layout renders a component tree and schedules re-renders requested by
// its hooks.
type Layout struct {
	id        string
	root      vdom.Component
	logger    *slog.Logger
	tracer    trace.Tracer
	observers []Observer
	observer  Observer
	debug     bool

	// renderMu serializes Start, Render and Close.
	renderMu sync.Mutex
	top      *instance
	closed   bool

	mu     sync.Mutex
	dirty  map[*instance]struct{}
	byHook map[*hooks.LifeCycleHook]*instance
	wake   chan struct{}
}

var _ hooks.Scheduler = (*Layout)(nil)

// New creates a layout for root. Nothing is rendered until Start.
func New(root vdom.Component, opts ...Option) *Layout {
	l := &Layout{
		id:     uuid.NewString(),
		root:   root,
		tracer: otel.Tracer(tracerName),
		dirty:  make(map[*instance]struct{}),
		byHook: make(map[*hooks.LifeCycleHook]*instance),
		wake:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = hooks.Logger()
	}
	l.logger = l.logger.With("layout", l.id)

	switch len(l.observers) {
	case 0:
		l.observer = noopObserver{}
	case 1:
		l.observer = l.observers[0]
	default:
		l.observer = multiObserver(l.observers)
	}
	return l
}

// ID returns the layout's unique identifier.
func (l *Layout) ID() string {
	return l.id
}

// Start renders the whole tree for the first time and starts its effects.
func (l *Layout) Start(ctx context.Context) error {
	l.renderMu.Lock()
	defer l.renderMu.Unlock()

	if l.closed {
		return errors.New("E062")
	}
	if l.top != nil {
		return errors.New("E063")
	}

	l.top = l.newInstance(l.root, nil, identity{})
	_, err := l.pass(ctx, "layout.mount", []*instance{l.top})
	return err
}

// ScheduleRender implements hooks.Scheduler. It marks the instance owning h
// dirty and wakes Run. Safe for concurrent use.
func (l *Layout) ScheduleRender(h *hooks.LifeCycleHook) {
	l.mu.Lock()
	inst, ok := l.byHook[h]
	if ok {
		l.dirty[inst] = struct{}{}
	}
	l.mu.Unlock()

	if !ok {
		return
	}
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of instances waiting for a render.
func (l *Layout) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.dirty)
}

// Render re-renders every instance scheduled since the last pass, then
// starts the effects registered by the pass. It returns the number of
// instances rendered, descendants of dirty instances included.
//
// A panic in a component render is recovered and returned as an E060
// error; instances rendered before it keep their new output.
func (l *Layout) Render(ctx context.Context) (int, error) {
	l.renderMu.Lock()
	defer l.renderMu.Unlock()

	if l.closed {
		return 0, errors.New("E062")
	}
	if l.top == nil {
		return 0, errors.New("E061")
	}

	batch := l.takeDirty()
	if len(batch) == 0 {
		return 0, nil
	}
	return l.pass(ctx, "layout.render", batch)
}

// Run renders whenever a render is requested until ctx is done, then
// closes the layout. Render failures are logged and the loop continues.
// Start is called first if the layout has not been started.
func (l *Layout) Run(ctx context.Context) error {
	l.renderMu.Lock()
	started := l.top != nil
	l.renderMu.Unlock()
	if !started {
		if err := l.Start(ctx); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			l.Close(context.WithoutCancel(ctx))
			return nil
		case <-l.wake:
			if _, err := l.Render(ctx); err != nil {
				if errors.Code(err) == "E062" {
					return nil
				}
				l.logger.ErrorContext(ctx, "render failed", "error", err)
			}
		}
	}
}

// Close unmounts the tree, children before parents, stopping every effect.
// Calling Close more than once is a no-op.
func (l *Layout) Close(ctx context.Context) {
	l.renderMu.Lock()
	defer l.renderMu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	if l.top == nil {
		return
	}

	ctx, span := l.tracer.Start(ctx, "layout.close",
		trace.WithAttributes(attribute.String("layout.id", l.id)))
	defer span.End()

	l.unmount(ctx, l.top)
	l.top = nil

	l.mu.Lock()
	clear(l.dirty)
	l.mu.Unlock()

	if l.debug {
		l.logger.DebugContext(ctx, "layout closed")
	}
}

// takeDirty returns the dirty instances, shallowest first.
func (l *Layout) takeDirty() []*instance {
	l.mu.Lock()
	set := l.dirty
	l.dirty = make(map[*instance]struct{})
	l.mu.Unlock()

	batch := make([]*instance, 0, len(set))
	for inst := range set {
		if inst.hook.IsUnmounted() || inst.within(set) {
			continue
		}
		batch = append(batch, inst)
	}
	sort.Slice(batch, func(i, j int) bool {
		if batch[i].depth != batch[j].depth {
			return batch[i].depth < batch[j].depth
		}
		return batch[i].hook.ID() < batch[j].hook.ID()
	})
	return batch
}

// renderPass collects the instances rendered by one pass.
type renderPass struct {
	current  *instance
	rendered []*instance
	mounted  int
	removed  int
}

func (l *Layout) pass(ctx context.Context, name string, batch []*instance) (n int, err error) {
	ctx, span := l.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("layout.id", l.id),
		attribute.Int("layout.scheduled", len(batch)),
	))
	defer span.End()

	start := time.Now()
	p := &renderPass{}

	defer func() {
		if r := recover(); r != nil {
			herr := errors.New("E060").Wrap(errors.FromPanic(r))
			if p.current != nil {
				herr = herr.WithDetailf("rendering %s", p.current.hook)
			}
			err = herr
			span.RecordError(err)
			span.SetStatus(codes.Error, "render panicked")
			l.logger.ErrorContext(ctx, "render panicked", "error", err)
		}

		// instances that finished rendering start their effects even when
		// a later one panicked
		for _, inst := range p.rendered {
			inst.hook.LayoutDidRender(ctx)
		}

		n = len(p.rendered)
		elapsed := time.Since(start)
		span.SetAttributes(
			attribute.Int("layout.rendered", n),
			attribute.Int("layout.mounted", p.mounted),
			attribute.Int("layout.unmounted", p.removed),
		)
		l.observer.RenderPass(n, elapsed)
		if l.debug {
			l.logger.DebugContext(ctx, "render pass",
				"pass", name,
				"scheduled", len(batch),
				"rendered", n,
				"mounted", p.mounted,
				"unmounted", p.removed,
				"elapsed", elapsed)
		}
	}()

	for _, inst := range batch {
		if inst.hook.IsUnmounted() {
			continue
		}
		l.renderInstance(ctx, inst, p)
	}
	return 0, nil
}

func (l *Layout) newInstance(c vdom.Component, parent *instance, id identity) *instance {
	var parentHook *hooks.LifeCycleHook
	depth := 0
	if parent != nil {
		parentHook = parent.hook
		depth = parent.depth + 1
	}

	inst := &instance{
		comp:   c,
		parent: parent,
		depth:  depth,
		ident:  id,
	}
	inst.hook = hooks.NewLifeCycleHook(c, parentHook, l,
		hooks.WithObserver(l.observer),
		hooks.WithHookLogger(l.logger),
	)

	l.mu.Lock()
	l.byHook[inst.hook] = inst
	l.mu.Unlock()

	l.observer.Mounted(inst.hook)
	return inst
}

// renderInstance renders inst and reconciles its child components, which
// are rendered in turn.
func (l *Layout) renderInstance(ctx context.Context, inst *instance, p *renderPass) {
	p.current = inst
	var node *vdom.VNode
	inst.hook.Render(func() { node = inst.comp.Render() })
	inst.node = node
	p.rendered = append(p.rendered, inst)

	old := make(map[identity]*instance, len(inst.children))
	for _, c := range inst.children {
		old[c.ident] = c
	}

	nodes := componentNodes(node, nil)
	children := make([]*instance, 0, len(nodes))
	byNode := make(map[*vdom.VNode]*instance, len(nodes))
	kept := make(map[*instance]bool, len(nodes))
	unkeyed := 0

	for _, n := range nodes {
		id := identityOf(n, &unkeyed)
		child, ok := old[id]
		if ok && !kept[child] {
			child.comp = n.Comp
			child.hook.SetComponent(n.Comp)
		} else {
			if ok && l.debug {
				l.logger.DebugContext(ctx, "duplicate component key", "key", n.Key, "parent", inst.hook.String())
			}
			child = l.newInstance(n.Comp, inst, id)
			p.mounted++
		}
		kept[child] = true
		byNode[n] = child
		children = append(children, child)
	}

	for _, c := range inst.children {
		if !kept[c] {
			l.unmount(ctx, c)
			p.removed++
		}
	}

	inst.children = children
	inst.byNode = byNode

	for _, child := range children {
		l.renderInstance(ctx, child, p)
	}
}

// unmount stops inst's subtree, last child first, then inst itself.
func (l *Layout) unmount(ctx context.Context, inst *instance) {
	for i := len(inst.children) - 1; i >= 0; i-- {
		l.unmount(ctx, inst.children[i])
	}
	inst.children = nil
	inst.byNode = nil

	inst.hook.WillUnmount(ctx)

	l.mu.Lock()
	delete(l.byHook, inst.hook)
	delete(l.dirty, inst)
	l.mu.Unlock()

	l.observer.Unmounted(inst.hook)
	if l.debug {
		l.logger.DebugContext(ctx, "unmounted", "component", inst.hook.String())
	}
}
