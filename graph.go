// Package weft is a fine-grained reactive dataflow engine: writable signals,
// lazily recomputed memos and side-effecting subscribers kept consistent by a
// batching scheduler. Values are pulled on demand; dirtiness is pushed
// eagerly, so a diamond-shaped graph recomputes each shared node at most once
// per transaction and no observer ever sees a half-updated state.
//
// A Graph and its nodes belong to one logical thread of execution. Use one
// graph per goroutine; graphs must not share nodes.
package weft

// DefaultMaxFlushIterations bounds how many effect runs a single flush may
// perform before it is declared a runaway feedback loop.
const DefaultMaxFlushIterations = 100_000

// Graph owns the reactive nodes, the tracking stack and the pending effect
// queue. All propagation happens synchronously on the caller's stack.
type Graph struct {
	nextID        uint64
	tracker       tracker
	batchDepth    int
	flushing      bool
	queue         []runner
	nodes         []*node
	maxFlushIters int
}

type GraphOption func(*Graph)

// WithMaxFlushIterations overrides the runaway-loop budget for one graph.
func WithMaxFlushIterations(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.maxFlushIters = n
		}
	}
}

func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{maxFlushIters: DefaultMaxFlushIterations}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Readable is any node with a readable current value. Both signal kinds
// satisfy it.
type Readable[T comparable] interface {
	Value() (T, error)
}

func (g *Graph) register(n *node, kind Kind, name string) {
	g.nextID++
	n.g = g
	n.id = g.nextID
	n.kind = kind
	n.name = name
	n.version = 1
	g.nodes = append(g.nodes, n)
}

func (g *Graph) unregister(n *node) {
	for i, cand := range g.nodes {
		if cand == n {
			g.nodes[i] = g.nodes[len(g.nodes)-1]
			g.nodes = g.nodes[:len(g.nodes)-1]
			return
		}
	}
}

// Len reports how many live nodes the graph holds.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// StartBatch opens a transaction. Writes inside a batch only mark and enqueue;
// nothing reruns until the outermost EndBatch.
func (g *Graph) StartBatch() {
	g.batchDepth++
}

// EndBatch closes the innermost transaction. Closing the outermost one
// flushes every pending effect exactly once against the settled values.
func (g *Graph) EndBatch() error {
	if g.batchDepth > 0 {
		g.batchDepth--
	}
	if g.batchDepth == 0 {
		return g.maybeFlush()
	}
	return nil
}

// Batch runs fn inside a transaction. The transaction is closed even when fn
// fails; fn's error wins over a flush error.
func (g *Graph) Batch(fn func() error) error {
	g.StartBatch()
	err := fn()
	ferr := g.EndBatch()
	if err != nil {
		return err
	}
	return ferr
}

// PauseTracking suspends dependency recording until ResumeTracking. Reads in
// between do not subscribe the currently-evaluating observer.
func (g *Graph) PauseTracking() {
	g.tracker.pushPaused()
}

func (g *Graph) ResumeTracking() {
	g.tracker.pop()
}

// Untracked runs fn with dependency recording suspended.
func (g *Graph) Untracked(fn func() error) error {
	g.PauseTracking()
	defer g.ResumeTracking()
	return fn()
}
