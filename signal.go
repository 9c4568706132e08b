package weft

// WriteableSignal is a leaf value holder. Writes propagate dirtiness to every
// recorded subscriber; reads inside a tracking frame register the signal as a
// dependency of the currently-evaluating observer.
type WriteableSignal[T comparable] struct {
	n      node
	value  T
	equals func(a, b T) bool
}

// Signal creates a writable leaf. The default equality policy is ==; override
// it with WithEquals.
func Signal[T comparable](g *Graph, initial T, opts ...Option[T]) *WriteableSignal[T] {
	cfg := newConfig(opts)
	s := &WriteableSignal[T]{value: initial, equals: cfg.equals}
	g.register(&s.n, KindSignal, cfg.name)
	return s
}

func (s *WriteableSignal[T]) base() *node { return &s.n }

// Signals are always up to date.
func (s *WriteableSignal[T]) refresh() error { return nil }

// Value returns the current value, registering the signal as a dependency of
// the active tracking frame.
func (s *WriteableSignal[T]) Value() (T, error) {
	if s.n.disposed {
		var zero T
		return zero, disposedErr(&s.n)
	}
	s.n.g.tracker.record(s)
	return s.value, nil
}

// Peek reads the current value without subscribing the active observer.
func (s *WriteableSignal[T]) Peek() (T, error) {
	g := s.n.g
	g.PauseTracking()
	defer g.ResumeTracking()
	return s.Value()
}

// Set writes a new value. Writing a value equal to the current one under the
// signal's equality policy is a no-op: no version bump, no propagation, no
// effect runs. Otherwise the version is bumped and subscribers are notified,
// immediately outside a batch or at the outermost EndBatch inside one. Errors
// from effects run by an immediate flush are returned here.
func (s *WriteableSignal[T]) Set(v T) error {
	if s.n.disposed {
		return disposedErr(&s.n)
	}
	if s.equals(s.value, v) {
		return nil
	}
	s.value = v
	s.n.version++
	g := s.n.g
	g.propagate(&s.n)
	return g.maybeFlush()
}

// Update applies fn to the current value and writes the result.
func (s *WriteableSignal[T]) Update(fn func(prev T) T) error {
	if s.n.disposed {
		return disposedErr(&s.n)
	}
	return s.Set(fn(s.value))
}

// Version reports the node's monotone change counter.
func (s *WriteableSignal[T]) Version() uint64 {
	return s.n.version
}

// Subscribe registers cb to run after this signal's value settles on a new
// version. The returned function unsubscribes in O(1).
func (s *WriteableSignal[T]) Subscribe(cb func()) (func(), error) {
	return s.n.g.subscribe(s, cb)
}

// Dispose tears the signal down. Further reads, writes and subscriptions fail
// with DisposedError. Subscriber back-references are dropped; dependents
// holding stale edges clean them up on their next retrack.
func (s *WriteableSignal[T]) Dispose() {
	if s.n.disposed {
		return
	}
	s.n.disposed = true
	s.n.subs.clear()
	s.n.g.unregister(&s.n)
}
