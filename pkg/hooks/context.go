package hooks

import (
	"fmt"

	"github.com/vango-dev/hooks/internal/errors"
	"github.com/vango-dev/hooks/pkg/vdom"
)

// Context passes a value down the component tree without threading it
// through every component. Create one with CreateContext, provide values
// with Provider and read them with UseContext.
//
// Example:
//
//	var ThemeContext = hooks.CreateContext("light")
//
//	app := vdom.Func("App", func() *vdom.VNode {
//	    return vdom.Comp(ThemeContext.Provider("dark", Toolbar))
//	})
//
//	Toolbar := vdom.Func("Toolbar", func() *vdom.VNode {
//	    return vdom.Text(hooks.UseContext(ThemeContext))
//	})
type Context[T any] struct {
	// key uniquely identifies this context among registered providers
	key *contextKey

	defaultValue T
}

type contextKey struct {
	name string
}

// CreateContext creates a new context with the given default value.
// The default is returned by UseContext when no Provider encloses the
// consuming component.
func CreateContext[T any](defaultValue T) *Context[T] {
	return &Context[T]{
		key:          &contextKey{name: fmt.Sprintf("%T", defaultValue)},
		defaultValue: defaultValue,
	}
}

// Default returns the default value for this context.
func (c *Context[T]) Default() T {
	return c.defaultValue
}

// Provider returns a component that makes value visible to the components
// rendered inside children.
func (c *Context[T]) Provider(value T, children ...any) *Provider[T] {
	return &Provider[T]{
		ctx:      c,
		value:    value,
		children: children,
	}
}

// Use is shorthand for UseContext(c).
func (c *Context[T]) Use() T {
	return UseContext(c)
}

// String implements fmt.Stringer.
func (c *Context[T]) String() string {
	if c == nil || c.key == nil {
		return "Context(<invalid>)"
	}
	return "Context(" + c.key.name + ")"
}

// Provider is the component returned by Context.Provider. Rendering it
// registers the value on the provider's hook and renders the children in a
// fragment.
type Provider[T any] struct {
	ctx      *Context[T]
	value    T
	key      string
	children []any
}

// WithKey returns a copy of the provider with a reconciliation key.
func (p *Provider[T]) WithKey(key string) *Provider[T] {
	cp := *p
	cp.key = key
	return &cp
}

// Render implements vdom.Component.
func (p *Provider[T]) Render() *vdom.VNode {
	CurrentHook().SetContextProvider(p)
	return vdom.Fragment(p.children...)
}

// Value returns the provided value.
func (p *Provider[T]) Value() T {
	return p.value
}

// ContextKey implements ContextProvider.
func (p *Provider[T]) ContextKey() any {
	return p.ctx.key
}

// ContextValue implements ContextProvider.
func (p *Provider[T]) ContextValue() any {
	return p.value
}

// ComponentType implements vdom.Typed: providers of the same context are
// the same component type.
func (p *Provider[T]) ComponentType() any {
	return p.ctx.key
}

// ComponentKey implements vdom.Keyed.
func (p *Provider[T]) ComponentKey() string {
	return p.key
}

// String implements fmt.Stringer.
func (p *Provider[T]) String() string {
	return "ContextProvider(" + p.ctx.key.name + ")"
}

// UseContext returns the value of the nearest Provider of c enclosing the
// current component, or c's default value. It panics with E003 when c was
// not created with CreateContext.
func UseContext[T any](c *Context[T]) T {
	h := CurrentHook()
	if c == nil || c.key == nil {
		panic(errors.New("E003").WithDetailf("%s used in %s", c, h))
	}

	p, ok := h.GetContextProvider(c.key)
	if !ok {
		return c.defaultValue
	}
	value, ok := p.ContextValue().(T)
	if !ok {
		var zero T
		return zero
	}
	return value
}
