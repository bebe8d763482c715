package layout

import (
	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/vdom"
)

// identity is what a child instance is matched on across renders of its
// parent. Keyed children match on type and key, unkeyed children on type
// and their position among the unkeyed children.
type identity struct {
	typ any
	key string
	pos int
}

func identityOf(n *vdom.VNode, unkeyed *int) identity {
	id := identity{typ: vdom.TypeOf(n.Comp), key: n.Key, pos: -1}
	if n.Key == "" {
		id.pos = *unkeyed
		*unkeyed++
	}
	return id
}

// instance is a mounted component.
type instance struct {
	comp   vdom.Component
	hook   *hooks.LifeCycleHook
	parent *instance
	depth  int
	ident  identity

	// node is the output of the last render; component nodes in it are
	// resolved through byNode.
	node     *vdom.VNode
	children []*instance
	byNode   map[*vdom.VNode]*instance
}

// within reports whether inst is a descendant of one of set.
func (inst *instance) within(set map[*instance]struct{}) bool {
	for p := inst.parent; p != nil; p = p.parent {
		if _, ok := set[p]; ok {
			return true
		}
	}
	return false
}

// componentNodes returns the component nodes of n in document order,
// without descending into them.
func componentNodes(n *vdom.VNode, out []*vdom.VNode) []*vdom.VNode {
	if n == nil {
		return out
	}
	if n.Kind == vdom.KindComponent {
		if n.Comp != nil {
			out = append(out, n)
		}
		return out
	}
	for _, c := range n.Children {
		out = componentNodes(c, out)
	}
	return out
}
