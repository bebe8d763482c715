package vdom

import (
	"fmt"
	"reflect"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <button>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is the virtual node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Key      string    // Reconciliation key
	Text     string    // For KindText
	Children []*VNode  // Child nodes
	Comp     Component // For KindComponent
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// Typed is implemented by components whose reconciliation type is not their
// Go type. Two components of the same type at the same position share state.
type Typed interface {
	ComponentType() any
}

// Keyed is implemented by components that carry a reconciliation key.
type Keyed interface {
	ComponentKey() string
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	name   string
	key    string
	render func() *VNode
}

// Func creates a named component from a render function.
// The name identifies the component type across renders.
func Func(name string, render func() *VNode) *FuncComponent {
	return &FuncComponent{name: name, render: render}
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// WithKey returns a copy of the component with the given key.
func (f *FuncComponent) WithKey(key string) *FuncComponent {
	c := *f
	c.key = key
	return &c
}

// Name returns the component name.
func (f *FuncComponent) Name() string {
	return f.name
}

// ComponentType implements Typed.
func (f *FuncComponent) ComponentType() any {
	if f.name != "" {
		return "func:" + f.name
	}
	return reflect.ValueOf(f.render).Pointer()
}

// ComponentKey implements Keyed.
func (f *FuncComponent) ComponentKey() string {
	return f.key
}

// String implements fmt.Stringer for diagnostics.
func (f *FuncComponent) String() string {
	if f.name == "" {
		return "Func"
	}
	return f.name
}

// TypeOf returns the reconciliation type of c.
func TypeOf(c Component) any {
	if t, ok := c.(Typed); ok {
		return t.ComponentType()
	}
	return reflect.TypeOf(c)
}

// KeyOf returns the reconciliation key of c, or "".
func KeyOf(c Component) string {
	if k, ok := c.(Keyed); ok {
		return k.ComponentKey()
	}
	return ""
}

// NameOf returns a human-readable name for c, used in logs.
func NameOf(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return reflect.TypeOf(c).String()
}
