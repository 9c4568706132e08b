package weft

import mapset "github.com/deckarep/golang-set/v2"

// sink is an observer that records dependency edges while it evaluates.
type sink interface {
	observer
	capture(e depEdge)
}

type frame struct {
	owner sink
	// Node ids read so far in this evaluation. Reading the same dependency
	// twice registers it once.
	seen mapset.Set[uint64]
}

// tracker is the per-graph stack of currently-evaluating observers. It is
// owned by one Graph, never global, so independent graphs cannot leak
// tracking state into each other. A nil entry marks a paused stretch.
type tracker struct {
	frames []*frame
}

func (t *tracker) active() *frame {
	if len(t.frames) == 0 {
		return nil
	}
	return t.frames[len(t.frames)-1]
}

func (t *tracker) push(owner sink) {
	t.frames = append(t.frames, &frame{owner: owner, seen: mapset.NewThreadUnsafeSet[uint64]()})
}

func (t *tracker) pushPaused() {
	t.frames = append(t.frames, nil)
}

func (t *tracker) pop() {
	t.frames = t.frames[:len(t.frames)-1]
}

// track runs fn with owner as the active observer. The frame is popped and
// the evaluating bit cleared on every exit path, including panics out of fn.
func (t *tracker) track(owner sink, fn func() error) error {
	n := owner.base()
	t.push(owner)
	n.evaluating = true
	defer func() {
		n.evaluating = false
		t.pop()
	}()
	return fn()
}

// record registers dep as a dependency of the active observer, wiring the
// edge in both directions and remembering dep's current version.
func (t *tracker) record(dep source) {
	f := t.active()
	if f == nil {
		return
	}
	dn := dep.base()
	if f.seen.Contains(dn.id) {
		return
	}
	f.seen.Add(dn.id)
	slot := dn.subs.add(f.owner)
	f.owner.capture(depEdge{dep: dep, slot: slot, ver: dn.version})
}
