// Package vdom provides the node model rendered by components.
//
// A component's Render returns a VNode tree made of elements, text,
// fragments and nested components. The layout package expands nested
// components, binding each one to its own life-cycle hook, and reconciles
// the tree across renders by position, key and component type.
//
// # Core Types
//
// VNode is the fundamental building block. Component is anything that can
// render to a VNode. Func wraps a render function as a named component.
//
//	counter := vdom.Func("Counter", func() *vdom.VNode {
//	    count, set := hooks.UseState(0)
//	    return vdom.Element("button", vdom.Textf("%d", count))
//	})
package vdom
