package weft

// runner is a queued terminal subscriber (effect or listener).
type runner interface {
	observer
	// run re-verifies staleness against recorded dependency versions and
	// reruns the body if anything actually changed.
	run() error
}

// propagate walks a changed node's subscribers. Direct subscribers are marked
// dirty; anything further downstream is marked check by the subscribers
// themselves. Derived values are never recomputed during the walk; they are
// pulled lazily on the next read or during the flush.
func (g *Graph) propagate(n *node) {
	n.subs.forEach(func(o observer) {
		o.invalidate(cacheDirty)
	})
}

// enqueue adds a terminal subscriber to the pending set at most once per
// transaction, guarded by the node's queued flag.
func (g *Graph) enqueue(r runner) {
	n := r.base()
	if n.queued {
		return
	}
	n.queued = true
	g.queue = append(g.queue, r)
}

// maybeFlush flushes unless a transaction is open or a flush is already
// draining, in which case the pending work folds into that flush.
func (g *Graph) maybeFlush() error {
	if g.batchDepth > 0 || g.flushing {
		return nil
	}
	return g.flush()
}

// flush drains the pending set in FIFO order until it reaches a fixpoint:
// effects that write signals re-enqueue downstream work onto the same queue
// rather than starting a nested flush. A failing effect aborts the flush and
// its error propagates to the write/batch caller; subscribers still queued
// behind it stay queued for the next flush.
func (g *Graph) flush() error {
	g.flushing = true
	defer func() { g.flushing = false }()

	runs := 0
	for i := 0; i < len(g.queue); i++ {
		r := g.queue[i]
		n := r.base()
		n.queued = false
		if n.disposed {
			continue
		}
		if runs >= g.maxFlushIters {
			for _, rest := range g.queue[i:] {
				rest.base().queued = false
			}
			g.queue = g.queue[:0]
			return &RunawayFlushError{Iterations: runs}
		}
		runs++
		if err := r.run(); err != nil {
			g.queue = append(g.queue[:0], g.queue[i+1:]...)
			return err
		}
	}
	g.queue = g.queue[:0]
	return nil
}
