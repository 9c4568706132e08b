package weft

// Kind tags the three node variants in the graph.
type Kind uint8

const (
	KindSignal Kind = iota + 1
	KindComputed
	KindEffect
)

func (k Kind) String() string {
	switch k {
	case KindSignal:
		return "signal"
	case KindComputed:
		return "computed"
	case KindEffect:
		return "effect"
	default:
		return "unknown"
	}
}

type cacheState uint8

const (
	cacheClean cacheState = iota // cached value is valid
	cacheCheck                   // an upstream node changed, value might be stale
	cacheDirty                   // a direct dependency changed value, must recompute
)

// node is the record shared by every graph member. It is embedded, never
// instantiated on its own.
type node struct {
	g          *Graph
	id         uint64
	name       string
	kind       Kind
	version    uint64
	state      cacheState
	disposed   bool
	queued     bool // already in the pending flush queue
	evaluating bool // currently on the tracking stack, used for cycle detection
	depCount   int
	subs       registry
}

// depEdge is one recorded dependency of a computed/effect/listener. slot is
// the edge's index in the dependency's subscriber registry, version the
// dependency version observed when the edge was recorded.
type depEdge struct {
	dep  source
	slot int
	ver  uint64
}

// source is the dependency-side view of a node.
type source interface {
	base() *node
	// refresh brings the node's cached value up to date. Signals are always
	// up to date; computeds recompute if their state demands it.
	refresh() error
}

// observer is the subscriber-side view: anything that sits in a registry and
// reacts to upstream invalidation.
type observer interface {
	base() *node
	// invalidate raises the observer's cache state during the push walk.
	// Values are never recomputed here.
	invalidate(s cacheState)
}

func (n *node) base() *node { return n }

// label is the node's debug identity for error messages and stats.
func (n *node) label() string {
	if n.name != "" {
		return n.name
	}
	return n.kind.String()
}

// detach removes every recorded dependency edge, clearing the back-references
// held in each dependency's registry. Edges are rebuilt from scratch on the
// next evaluation.
func detach(edges []depEdge) {
	for _, e := range edges {
		e.dep.base().subs.remove(e.slot)
	}
}
