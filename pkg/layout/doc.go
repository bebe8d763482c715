// Package layout is a reference renderer for hooks components.
//
// A Layout mounts a root component, binds one hooks.LifeCycleHook to every
// component instance in the tree and acts as the hooks.Scheduler for them.
// Render requests are collected into a dirty set; a render pass re-renders
// each dirty instance together with its subtree, reconciles child
// components by key, type and position, unmounts instances that
// disappeared and finally starts the effects registered during the pass.
//
// Multiple render requests for the same instance between two passes
// collapse into one render.
//
//	l := layout.New(app, layout.WithLogger(logger))
//	if err := l.Start(ctx); err != nil {
//	    return err
//	}
//	defer l.Close(context.Background())
//
//	go l.Run(ctx)
//
// Effects started by a pass run in render order, parent before child.
// Close unmounts the tree children first, stopping every running effect
// before the instance is discarded.
package layout
