package weft

// registry is a per-node subscriber list: a dense entry slice plus a stack of
// reusable slot indices. Adds and removes are O(1), and a removed slot never
// shifts the others, so a slot index can be held externally as a token.
type registry struct {
	entries []observer
	free    []int
	live    int
}

// add stores o and returns its slot token.
func (r *registry) add(o observer) int {
	r.live++
	if n := len(r.free); n > 0 {
		slot := r.free[n-1]
		r.free = r.free[:n-1]
		r.entries[slot] = o
		return slot
	}
	r.entries = append(r.entries, o)
	return len(r.entries) - 1
}

// remove tombstones the slot and recycles it. Out-of-range or already-empty
// slots are ignored so stale tokens (e.g. edges into a cleared registry) are
// harmless.
func (r *registry) remove(slot int) {
	if slot < 0 || slot >= len(r.entries) || r.entries[slot] == nil {
		return
	}
	r.entries[slot] = nil
	r.free = append(r.free, slot)
	r.live--
}

// forEach visits every live subscriber. The entry count is snapshotted up
// front: subscribers added mid-iteration are not visited this pass, and
// tombstoned slots are skipped, so re-entrant mutation cannot corrupt the
// walk.
func (r *registry) forEach(fn func(observer)) {
	count := len(r.entries)
	for i := 0; i < count; i++ {
		if o := r.entries[i]; o != nil {
			fn(o)
		}
	}
}

// clear drops every entry and resets the free list.
func (r *registry) clear() {
	r.entries = nil
	r.free = nil
	r.live = 0
}
