package weft

type config[T comparable] struct {
	name   string
	equals func(a, b T) bool
}

// Option configures a signal or computed at construction time.
type Option[T comparable] func(*config[T])

// WithName attaches a debug name, surfaced in errors and stats output.
func WithName[T comparable](name string) Option[T] {
	return func(c *config[T]) {
		c.name = name
	}
}

// WithEquals overrides the node's equality policy. The policy decides whether
// a write or recompute counts as a change: equal values skip the version bump
// and propagation entirely. The default compares with ==.
func WithEquals[T comparable](eq func(a, b T) bool) Option[T] {
	return func(c *config[T]) {
		c.equals = eq
	}
}

func newConfig[T comparable](opts []Option[T]) config[T] {
	cfg := config[T]{
		equals: func(a, b T) bool { return a == b },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
