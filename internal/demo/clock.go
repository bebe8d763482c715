package demo

import (
	"context"
	"time"

	"github.com/vango-dev/hooks/pkg/hooks"
	"github.com/vango-dev/hooks/pkg/vdom"
)

// Clock counts ticks of a ticker started by an async effect. OnTick, when
// set, is called from an effect after every render that saw a new tick.
type Clock struct {
	Interval time.Duration
	OnTick   func(ticks int)
}

// Component returns the clock component.
func (c *Clock) Component() vdom.Component {
	return vdom.Func("Clock", c.render)
}

func (c *Clock) render() *vdom.VNode {
	ticks, set := hooks.UseState(0)

	hooks.UseEffect(hooks.AsyncGenerator(func(ctx context.Context, yield func()) {
		ticker := time.NewTicker(c.Interval)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					set.Update(func(n int) int { return n + 1 })
				}
			}
		}()

		yield()

		ticker.Stop()
		<-done
	}), hooks.Deps{c.Interval})

	hooks.UseEffect(hooks.EffectFunc(func() hooks.Cleanup {
		if ticks > 0 && c.OnTick != nil {
			c.OnTick(ticks)
		}
		return nil
	}), hooks.Deps{ticks})

	theme := hooks.UseContext(Theme)
	return vdom.Element("time", vdom.Textf("[%s] tick %d", theme, ticks))
}
