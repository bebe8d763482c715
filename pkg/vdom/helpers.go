package vdom

import "fmt"

// Attr is a node attribute. Only keys are modelled.
type Attr struct {
	Key string
}

// Key sets the reconciliation key of an element.
func Key(key any) Attr {
	return Attr{Key: fmt.Sprint(key)}
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Comp wraps a component as a node.
func Comp(c Component) *VNode {
	return &VNode{
		Kind: KindComponent,
		Comp: c,
		Key:  KeyOf(c),
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0, len(children)),
	}
	node.Children = appendChildren(node.Children, children)
	return node
}

// Element creates an element node. Arguments may be children (nodes,
// strings, components, slices of nodes) or a Key attribute.
func Element(tag string, args ...any) *VNode {
	node := &VNode{
		Kind: KindElement,
		Tag:  tag,
	}
	children := make([]any, 0, len(args))
	for _, arg := range args {
		if a, ok := arg.(Attr); ok {
			node.Key = a.Key
			continue
		}
		children = append(children, arg)
	}
	node.Children = appendChildren(nil, children)
	return node
}

func appendChildren(dst []*VNode, children []any) []*VNode {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				dst = append(dst, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					dst = append(dst, c)
				}
			}
		case string:
			dst = append(dst, Text(v))
		case Component:
			dst = append(dst, Comp(v))
		default:
			dst = append(dst, Text(fmt.Sprint(v)))
		}
	}
	return dst
}

// Range maps items to nodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	nodes := make([]*VNode, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// If returns node when condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}
