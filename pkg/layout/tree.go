package layout

import (
	"strings"

	"github.com/vango-dev/hooks/pkg/vdom"
)

// Tree returns the current output of the layout with every component node
// replaced by what that component rendered. The result is a copy and may be
// retained by the caller. It is nil before Start and after Close.
func (l *Layout) Tree() *vdom.VNode {
	l.renderMu.Lock()
	defer l.renderMu.Unlock()

	if l.top == nil {
		return nil
	}
	return resolve(l.top, l.top.node)
}

// Text returns the text content of Tree in document order.
func (l *Layout) Text() string {
	var b strings.Builder
	writeText(&b, l.Tree())
	return b.String()
}

func resolve(inst *instance, n *vdom.VNode) *vdom.VNode {
	if n == nil {
		return nil
	}
	if n.Kind == vdom.KindComponent {
		child, ok := inst.byNode[n]
		if !ok {
			return nil
		}
		return resolve(child, child.node)
	}

	out := &vdom.VNode{
		Kind: n.Kind,
		Tag:  n.Tag,
		Key:  n.Key,
		Text: n.Text,
	}
	if len(n.Children) > 0 {
		out.Children = make([]*vdom.VNode, 0, len(n.Children))
		for _, c := range n.Children {
			if r := resolve(inst, c); r != nil {
				out.Children = append(out.Children, r)
			}
		}
	}
	return out
}

func writeText(b *strings.Builder, n *vdom.VNode) {
	if n == nil {
		return
	}
	if n.Kind == vdom.KindText {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		writeText(b, c)
	}
}
