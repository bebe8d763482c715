package demo

import (
	"fmt"
	"sync"

	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/vdom"
)

// Counter is a button counting its clicks. An effect keyed on the count
// logs "mounted N" when it starts and "cleaned N" when it stops.
type Counter struct {
	log *Log

	mu    sync.Mutex
	click func()
}

// NewCounter creates a counter logging to log.
func NewCounter(log *Log) *Counter {
	return &Counter{log: log}
}

// Component returns the counter component. Mount it once.
func (c *Counter) Component() vdom.Component {
	return vdom.Func("Counter", c.render)
}

// Click increments the mounted counter. It reports false before the first
// render.
func (c *Counter) Click() bool {
	c.mu.Lock()
	click := c.click
	c.mu.Unlock()

	if click == nil {
		return false
	}
	click()
	return true
}

func (c *Counter) render() *vdom.VNode {
	theme := hooks.UseContext(Theme)
	count, set := hooks.UseState(0)

	hooks.UseEffect(hooks.EffectFunc(func() hooks.Cleanup {
		c.log.Addf("mounted %d", count)
		return func() { c.log.Addf("cleaned %d", count) }
	}), hooks.Deps{count})

	click := hooks.UseCallback(func() {
		set.Update(func(n int) int { return n + 1 })
	}, hooks.NoDeps)

	c.mu.Lock()
	c.click = click
	c.mu.Unlock()

	hooks.UseDebugValue(func() any { return fmt.Sprintf("count=%d", count) }, hooks.Deps{count})

	return vdom.Element("button", vdom.Textf("[%s] clicked %d times", theme, count))
}
