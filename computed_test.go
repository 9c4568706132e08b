package weft_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weftworks/weft"
)

// should not evaluate until the first read, then memoize
func TestComputedLazyMemoized(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 2)
	runs := 0
	c := weft.Computed(g, func(_ int) (int, error) {
		runs++
		v, err := a.Value()
		return v * v, err
	})
	assert.Equal(t, 0, runs)

	assert.Equal(t, 4, val[int](t, c))
	assert.Equal(t, 4, val[int](t, c))
	assert.Equal(t, 1, runs)

	set(t, a, 3)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 9, val[int](t, c))
	assert.Equal(t, 2, runs)
}

// the getter should receive the previously memoized value
func TestComputedOldValue(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 1)
	var olds []int
	c := weft.Computed(g, func(oldValue int) (int, error) {
		olds = append(olds, oldValue)
		return a.Value()
	})

	assert.Equal(t, 1, val[int](t, c))
	set(t, a, 7)
	assert.Equal(t, 7, val[int](t, c))
	assert.Equal(t, []int{0, 1}, olds)
}

// a diamond should recompute each shared node at most once per write
func TestComputedDiamond(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 1)
	bRuns, cRuns, dRuns := 0, 0, 0
	b := weft.Computed(g, func(_ int) (int, error) {
		bRuns++
		v, err := a.Value()
		return v + 1, err
	})
	c := weft.Computed(g, func(_ int) (int, error) {
		cRuns++
		v, err := a.Value()
		return v + 10, err
	})
	d := weft.Computed(g, func(_ int) (int, error) {
		dRuns++
		bv, err := b.Value()
		if err != nil {
			return 0, err
		}
		cv, err := c.Value()
		if err != nil {
			return 0, err
		}
		return bv + cv, nil
	})
	effectRuns := 0
	_, err := weft.Effect(g, func() error {
		_, err := d.Value()
		effectRuns++
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 13, val[int](t, d))
	require.Equal(t, []int{1, 1, 1, 1}, []int{bRuns, cRuns, dRuns, effectRuns})

	set(t, a, 2)
	assert.Equal(t, 15, val[int](t, d))
	assert.Equal(t, []int{2, 2, 2, 2}, []int{bRuns, cRuns, dRuns, effectRuns})
}

// dependencies should be dropped when a branch stops reading them
func TestComputedDynamicBranches(t *testing.T) {
	g := weft.NewGraph()
	cond := weft.Signal(g, true)
	a := weft.Signal(g, 1)
	b := weft.Signal(g, 100)
	runs := 0
	c := weft.Computed(g, func(_ int) (int, error) {
		runs++
		on, err := cond.Value()
		if err != nil {
			return 0, err
		}
		if on {
			return a.Value()
		}
		return b.Value()
	})

	assert.Equal(t, 1, val[int](t, c))
	set(t, b, 200) // unused branch
	assert.Equal(t, 1, val[int](t, c))
	assert.Equal(t, 1, runs)

	set(t, cond, false)
	assert.Equal(t, 200, val[int](t, c))
	assert.Equal(t, 2, runs)

	set(t, a, 2) // now the unused branch
	assert.Equal(t, 200, val[int](t, c))
	assert.Equal(t, 2, runs)
}

// an upstream recompute that settles on an equal value should not re-fire downstream
func TestComputedEqualityGate(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 1)
	cRuns := 0
	c := weft.Computed(g, func(_ bool) (bool, error) {
		cRuns++
		v, err := a.Value()
		return v > 0, err
	})
	effectRuns := 0
	_, err := weft.Effect(g, func() error {
		_, err := c.Value()
		effectRuns++
		return err
	})
	require.NoError(t, err)
	before := c.Version()

	set(t, a, 2)
	assert.Equal(t, 2, cRuns)
	assert.Equal(t, 1, effectRuns)
	assert.Equal(t, before, c.Version())

	set(t, a, -1)
	assert.Equal(t, 3, cRuns)
	assert.Equal(t, 2, effectRuns)
	assert.Equal(t, before+1, c.Version())
}

// reading the same dependency twice should register one edge
func TestComputedDuplicateReads(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 3)
	runs := 0
	c := weft.Computed(g, func(_ int) (int, error) {
		runs++
		x, err := a.Value()
		if err != nil {
			return 0, err
		}
		y, err := a.Value()
		if err != nil {
			return 0, err
		}
		return x + y, nil
	})

	assert.Equal(t, 6, val[int](t, c))
	set(t, a, 4)
	assert.Equal(t, 8, val[int](t, c))
	assert.Equal(t, 2, runs)
}

// a self-referential computed should fail with a cycle error
func TestComputedSelfCycle(t *testing.T) {
	g := weft.NewGraph()
	var c *weft.ReadonlySignal[int]
	c = weft.Computed(g, func(_ int) (int, error) {
		return c.Value()
	}, weft.WithName[int]("ouroboros"))

	_, err := c.Value()
	var ce *weft.CyclicDependencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "ouroboros", ce.Name)
}

// a transitive cycle should fail with a cycle error
func TestComputedTransitiveCycle(t *testing.T) {
	g := weft.NewGraph()
	var c1, c2 *weft.ReadonlySignal[int]
	c1 = weft.Computed(g, func(_ int) (int, error) {
		return c2.Value()
	})
	c2 = weft.Computed(g, func(_ int) (int, error) {
		return c1.Value()
	})

	_, err := c1.Value()
	var ce *weft.CyclicDependencyError
	assert.ErrorAs(t, err, &ce)
}

// a failing getter should leave the node dirty so the next read retries
func TestComputedGetterErrorRetries(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 1)
	fail := true
	boom := errors.New("boom")
	c := weft.Computed(g, func(_ int) (int, error) {
		if fail {
			return 0, boom
		}
		return a.Value()
	})

	_, err := c.Value()
	require.ErrorIs(t, err, boom)

	fail = false
	assert.Equal(t, 1, val[int](t, c))
}

// a disposed computed should reject reads and detach from its dependencies
func TestComputedDisposed(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 1)
	runs := 0
	c := weft.Computed(g, func(_ int) (int, error) {
		runs++
		return a.Value()
	})
	require.Equal(t, 1, val[int](t, c))

	c.Dispose()
	_, err := c.Value()
	var de *weft.DisposedError
	require.ErrorAs(t, err, &de)

	set(t, a, 2)
	assert.Equal(t, 1, runs)
}
