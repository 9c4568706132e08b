package weft

// ReadonlySignal is a memoized value derived from other nodes. It recomputes
// lazily: writes upstream only mark it, the next read pulls it clean.
// Dependencies are re-recorded from scratch on every evaluation, so a getter
// that branches only ever depends on the branch it actually took.
type ReadonlySignal[T comparable] struct {
	n      node
	value  T
	getter func(oldValue T) (T, error)
	equals func(a, b T) bool
	deps   []depEdge
}

// Computed creates a derived node. The getter receives the previously
// memoized value (the zero value on the first run) and is evaluated under a
// tracking frame, so every signal or computed it reads becomes a dependency.
// Nothing is evaluated until the first read.
func Computed[T comparable](g *Graph, getter func(oldValue T) (T, error), opts ...Option[T]) *ReadonlySignal[T] {
	cfg := newConfig(opts)
	c := &ReadonlySignal[T]{getter: getter, equals: cfg.equals}
	g.register(&c.n, KindComputed, cfg.name)
	c.n.state = cacheDirty
	return c
}

func (c *ReadonlySignal[T]) base() *node { return &c.n }

func (c *ReadonlySignal[T]) capture(e depEdge) {
	c.deps = append(c.deps, e)
	c.n.depCount = len(c.deps)
}

// invalidate raises the cache state during the push walk. Only the clean →
// stale transition walks further downstream, so a diamond marks each node
// once per pass.
func (c *ReadonlySignal[T]) invalidate(s cacheState) {
	n := &c.n
	if n.disposed || n.state >= s {
		return
	}
	wasClean := n.state == cacheClean
	n.state = s
	if wasClean {
		n.subs.forEach(func(o observer) {
			o.invalidate(cacheCheck)
		})
	}
}

// refresh brings the memoized value up to date. In the check state the
// recorded dependency versions decide whether a recompute is needed at all;
// this is what stops a diamond from re-firing downstream when an upstream
// recompute produced an equal value.
func (c *ReadonlySignal[T]) refresh() error {
	n := &c.n
	if n.disposed || n.state == cacheClean {
		return nil
	}
	if n.state == cacheCheck {
		stale := false
		for _, e := range c.deps {
			if err := e.dep.refresh(); err != nil {
				return err
			}
			if e.dep.base().version != e.ver {
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
	return c.recompute()
}

// recompute clears the previous dependency set, re-runs the getter under a
// fresh tracking frame and bumps the version only if the value changed under
// the equality policy. On getter error the node stays dirty so the next read
// retries.
func (c *ReadonlySignal[T]) recompute() error {
	n := &c.n
	detach(c.deps)
	c.deps = c.deps[:0]
	n.depCount = 0

	old := c.value
	var next T
	err := n.g.tracker.track(c, func() error {
		v, err := c.getter(old)
		if err != nil {
			return err
		}
		next = v
		return nil
	})
	if err != nil {
		return err
	}
	n.state = cacheClean
	if !c.equals(old, next) {
		c.value = next
		n.version++
	}
	return nil
}

// Value returns the memoized value, recomputing first if any dependency
// changed, then registers this node with the active tracking frame. Reading a
// computed that is currently evaluating fails with CyclicDependencyError.
func (c *ReadonlySignal[T]) Value() (T, error) {
	n := &c.n
	if n.disposed {
		var zero T
		return zero, disposedErr(n)
	}
	if n.evaluating {
		var zero T
		return zero, cycleErr(n)
	}
	if err := c.refresh(); err != nil {
		var zero T
		return zero, err
	}
	n.g.tracker.record(c)
	return c.value, nil
}

// Peek reads the settled value without subscribing the active observer.
func (c *ReadonlySignal[T]) Peek() (T, error) {
	g := c.n.g
	g.PauseTracking()
	defer g.ResumeTracking()
	return c.Value()
}

// Version reports the node's monotone change counter. It only moves when the
// memoized value actually changed.
func (c *ReadonlySignal[T]) Version() uint64 {
	return c.n.version
}

// Subscribe registers cb to run after this node settles on a new version.
func (c *ReadonlySignal[T]) Subscribe(cb func()) (func(), error) {
	return c.n.g.subscribe(c, cb)
}

// Dispose detaches the node from every dependency and marks it inert.
func (c *ReadonlySignal[T]) Dispose() {
	if c.n.disposed {
		return
	}
	detach(c.deps)
	c.deps = nil
	c.n.depCount = 0
	c.n.disposed = true
	c.n.subs.clear()
	c.n.g.unregister(&c.n)
}
