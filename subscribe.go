package weft

// listener is an external subscriber: a callback keyed to a single node,
// fired after the node settles on a new version. It rides the same queue as
// effects, so callbacks observe post-transaction values.
type listener struct {
	n    node
	edge depEdge
	cb   func()
}

// subscribe settles src first, then registers the callback. The callback does
// not fire for staleness that predates the subscription.
func (g *Graph) subscribe(src source, cb func()) (func(), error) {
	sn := src.base()
	if sn.disposed {
		return nil, disposedErr(sn)
	}
	if err := src.refresh(); err != nil {
		return nil, err
	}
	l := &listener{cb: cb}
	g.register(&l.n, KindEffect, "")
	slot := sn.subs.add(l)
	l.edge = depEdge{dep: src, slot: slot, ver: sn.version}
	l.n.depCount = 1
	return l.dispose, nil
}

func (l *listener) base() *node { return &l.n }

func (l *listener) invalidate(s cacheState) {
	n := &l.n
	if n.disposed {
		return
	}
	if n.state < s {
		n.state = s
	}
	n.g.enqueue(l)
}

// run settles the watched node and fires the callback only if its version
// moved past the last one delivered.
func (l *listener) run() error {
	n := &l.n
	if n.disposed || n.state == cacheClean {
		return nil
	}
	n.state = cacheClean
	if err := l.edge.dep.refresh(); err != nil {
		return effectErr(n, err)
	}
	if v := l.edge.dep.base().version; v != l.edge.ver {
		l.edge.ver = v
		l.cb()
	}
	return nil
}

// dispose is the unsubscribe token's target: it frees the registry slot and
// marks the listener inert, so a queued notification becomes a no-op. It is
// idempotent and safe to call during a flush of the same node.
func (l *listener) dispose() {
	if l.n.disposed {
		return
	}
	l.edge.dep.base().subs.remove(l.edge.slot)
	l.n.disposed = true
	l.n.g.unregister(&l.n)
}
