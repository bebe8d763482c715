// Package demo holds the components run by hookctl.
package demo

import (
	"fmt"
	"sync"

	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/vdom"
)

// Theme is the colour scheme shared with every demo component.
var Theme = hooks.CreateContext("light")

// Log is an ordered, concurrency-safe list of effect events.
type Log struct {
	mu    sync.Mutex
	lines []string
}

// Addf appends a formatted line.
func (l *Log) Addf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the lines logged so far.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// App wraps root in a Theme provider.
func App(theme string, root vdom.Component) vdom.Component {
	return vdom.Func("App", func() *vdom.VNode {
		return vdom.Comp(Theme.Provider(theme, root))
	})
}
