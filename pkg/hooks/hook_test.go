package hooks

import (
	"context"
	"testing"

	"github.com/vango-dev/hooks/pkg/vdom"
)

func TestSlotIdentityAcrossRenders(t *testing.T) {
	h, _ := newTestHook(t)

	var refs []*Ref[int]
	var setters []Setter[string]
	for i := 0; i < 3; i++ {
		render(h, func() {
			_, set := UseState("init")
			_ = UseMemo(func() int { return 1 }, NoDeps)
			refs = append(refs, UseRef(i))
			setters = append(setters, set)
		})
	}

	if refs[0] != refs[1] || refs[1] != refs[2] {
		t.Error("ref did not persist across renders")
	}
	if refs[2].Current() != 0 {
		t.Errorf("ref reinitialized on rerender, got %d", refs[2].Current())
	}
	if setters[0].cell != setters[2].cell {
		t.Error("state cell did not persist across renders")
	}
	if h.SlotCount() != 3 {
		t.Errorf("SlotCount() = %d, want 3", h.SlotCount())
	}
}

func TestHookOutsideRenderPanics(t *testing.T) {
	expectHookPanic(t, "E001", func() {
		UseState(0)
	})
	expectHookPanic(t, "E001", func() {
		_ = CurrentHook()
	})
}

func TestUseSlotOnIdleHookPanics(t *testing.T) {
	h, _ := newTestHook(t)
	expectHookPanic(t, "E001", func() {
		h.UseSlot(SlotState, func() any { return nil })
	})
}

func TestHookOrderChangePanics(t *testing.T) {
	h, _ := newTestHook(t)
	render(h, func() {
		UseState(0)
		UseRef(0)
	})

	expectHookPanic(t, "E002", func() {
		h.Render(func() {
			UseRef(0)
			UseState(0)
		})
	})
	if lookupCurrentHook() != nil {
		t.Error("goroutine binding not restored after panic")
	}
}

func TestExtraHookPanics(t *testing.T) {
	h, _ := newTestHook(t)
	render(h, func() { UseState(0) })

	expectHookPanic(t, "E002", func() {
		h.Render(func() {
			UseState(0)
			UseState(1)
		})
	})
}

func TestMissingHookPanics(t *testing.T) {
	h, _ := newTestHook(t)
	render(h, func() {
		UseState(0)
		UseState(1)
	})

	expectHookPanic(t, "E002", func() {
		h.Render(func() { UseState(0) })
	})
}

func TestCurrentHookNesting(t *testing.T) {
	outer, _ := newTestHook(t)
	inner, _ := newTestHook(t)

	outer.Render(func() {
		if CurrentHook() != outer {
			t.Error("expected outer hook")
		}
		inner.Render(func() {
			if CurrentHook() != inner {
				t.Error("expected inner hook")
			}
		})
		if CurrentHook() != outer {
			t.Error("outer hook not restored")
		}
	})
	if lookupCurrentHook() != nil {
		t.Error("binding leaked after render")
	}
}

func TestScheduleRenderAfterUnmountIgnored(t *testing.T) {
	h, sched := newTestHook(t)

	var set Setter[int]
	render(h, func() { _, set = UseState(0) })

	set.Set(1)
	if sched.count() != 1 {
		t.Fatalf("expected 1 render request, got %d", sched.count())
	}

	h.WillUnmount(context.Background())
	if !h.IsUnmounted() {
		t.Fatal("expected unmounted")
	}
	set.Set(2)
	if sched.count() != 1 {
		t.Errorf("render scheduled after unmount, count=%d", sched.count())
	}
	if set.Get() != 2 {
		t.Errorf("late dispatch should still update the cell, got %d", set.Get())
	}
}

func TestHookAccessors(t *testing.T) {
	comp := vdom.Func("Widget", nil)
	parent := NewLifeCycleHook(comp, nil, nil)
	child := NewLifeCycleHook(comp, parent, nil)

	if child.Parent() != parent {
		t.Error("Parent() mismatch")
	}
	if child.Component() != comp {
		t.Error("Component() mismatch")
	}
	if parent.ID() == child.ID() {
		t.Error("IDs must be unique")
	}
	if child.IsRendering() {
		t.Error("should not be rendering")
	}

	// nil scheduler: schedule is a no-op
	child.ScheduleRender()
}
