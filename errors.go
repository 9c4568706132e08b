package weft

import "fmt"

// DisposedError reports an operation on a node that has been torn down.
type DisposedError struct {
	ID   uint64
	Name string
	Kind Kind
}

func (e *DisposedError) Error() string {
	return fmt.Sprintf("weft: %s %q (node %d) is disposed", e.Kind, e.Name, e.ID)
}

// CyclicDependencyError reports a computed that read itself, directly or
// transitively, during its own evaluation.
type CyclicDependencyError struct {
	ID   uint64
	Name string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("weft: cyclic dependency through computed %q (node %d)", e.Name, e.ID)
}

// EffectRunError wraps an error returned by an effect or listener body. It
// carries enough context for the write/batch caller to report which node
// failed.
type EffectRunError struct {
	ID   uint64
	Name string
	Err  error
}

func (e *EffectRunError) Error() string {
	return fmt.Sprintf("weft: effect %q (node %d): %v", e.Name, e.ID, e.Err)
}

func (e *EffectRunError) Unwrap() error { return e.Err }

// RunawayFlushError reports a flush that failed to settle within the graph's
// iteration budget, usually an effect writing a signal it depends on.
type RunawayFlushError struct {
	Iterations int
}

func (e *RunawayFlushError) Error() string {
	return fmt.Sprintf("weft: flush did not settle after %d effect runs", e.Iterations)
}

func disposedErr(n *node) error {
	return &DisposedError{ID: n.id, Name: n.label(), Kind: n.kind}
}

func cycleErr(n *node) error {
	return &CyclicDependencyError{ID: n.id, Name: n.label()}
}

func effectErr(n *node, err error) error {
	return &EffectRunError{ID: n.id, Name: n.label(), Err: err}
}
