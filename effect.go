package weft

// sideEffect is a terminal subscriber: it holds no externally readable value
// and exists only to re-run its body when recorded dependencies change.
type sideEffect struct {
	n    node
	fn   func() error
	deps []depEdge
}

// Effect runs fn once, synchronously, under a tracking frame to establish its
// initial dependencies, and re-runs it whenever they change. The returned
// stop function disposes the effect; a queued-but-unrun notification for a
// stopped effect is a no-op. An error from the initial run is returned
// wrapped in EffectRunError; the effect keeps whatever dependencies the
// partial run recorded.
func Effect(g *Graph, fn func() error) (func(), error) {
	e := &sideEffect{fn: fn}
	g.register(&e.n, KindEffect, "")
	e.n.state = cacheDirty
	err := e.rerun()
	return e.dispose, err
}

func (e *sideEffect) base() *node { return &e.n }

func (e *sideEffect) capture(edge depEdge) {
	e.deps = append(e.deps, edge)
	e.n.depCount = len(e.deps)
}

func (e *sideEffect) invalidate(s cacheState) {
	n := &e.n
	if n.disposed {
		return
	}
	if n.state < s {
		n.state = s
	}
	n.g.enqueue(e)
}

// run is the flush entry point. In the check state it polls recorded
// dependency versions first, so an upstream recompute that settled on an
// equal value does not re-fire the effect.
func (e *sideEffect) run() error {
	n := &e.n
	if n.disposed || n.state == cacheClean {
		return nil
	}
	if n.state == cacheCheck {
		stale := false
		for _, edge := range e.deps {
			if err := edge.dep.refresh(); err != nil {
				return effectErr(n, err)
			}
			if edge.dep.base().version != edge.ver {
				stale = true
				break
			}
		}
		if !stale {
			n.state = cacheClean
			return nil
		}
		n.state = cacheDirty
	}
	return e.rerun()
}

// rerun replaces the dependency set wholesale and executes the body under a
// fresh tracking frame, exactly like a computed recompute.
func (e *sideEffect) rerun() error {
	n := &e.n
	detach(e.deps)
	e.deps = e.deps[:0]
	n.depCount = 0

	err := n.g.tracker.track(e, e.fn)
	n.state = cacheClean
	if err != nil {
		return effectErr(n, err)
	}
	return nil
}

func (e *sideEffect) dispose() {
	if e.n.disposed {
		return
	}
	detach(e.deps)
	e.deps = nil
	e.n.depCount = 0
	e.n.disposed = true
	e.n.subs.clear()
	e.n.g.unregister(&e.n)
}
