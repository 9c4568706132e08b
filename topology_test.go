package weft_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weftworks/weft"
)

// a deep computed chain should stay correct and recompute once per write
func TestTopologyDeepChain(t *testing.T) {
	const depth = 200

	g := weft.NewGraph()
	src := weft.Signal(g, 0)
	runs := 0
	var last weft.Readable[int] = src
	for i := 0; i < depth; i++ {
		prev := last
		last = weft.Computed(g, func(_ int) (int, error) {
			runs++
			v, err := prev.Value()
			return v + 1, err
		})
	}

	assert.Equal(t, depth, val[int](t, last))
	assert.Equal(t, depth, runs)

	set(t, src, 10)
	assert.Equal(t, depth+10, val[int](t, last))
	assert.Equal(t, 2*depth, runs)
}

// a wide fan should reach every leaf from a single write
func TestTopologyWideFan(t *testing.T) {
	const width = 100

	g := weft.NewGraph()
	src := weft.Signal(g, 1)
	leaves := make([]*weft.ReadonlySignal[int], width)
	for i := 0; i < width; i++ {
		i := i
		leaves[i] = weft.Computed(g, func(_ int) (int, error) {
			v, err := src.Value()
			return v * (i + 1), err
		})
	}
	sum := 0
	_, err := weft.Effect(g, func() error {
		sum = 0
		for _, leaf := range leaves {
			v, err := leaf.Value()
			if err != nil {
				return err
			}
			sum += v
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, width*(width+1)/2, sum)

	set(t, src, 2)
	assert.Equal(t, width*(width+1), sum)
}

// repeated flips through a mux should keep edge counts from leaking
func TestTopologyMuxRetracking(t *testing.T) {
	g := weft.NewGraph()
	sel := weft.Signal(g, 0)
	inputs := []*weft.WriteableSignal[string]{
		weft.Signal(g, "a"),
		weft.Signal(g, "b"),
		weft.Signal(g, "c"),
	}
	mux := weft.Computed(g, func(_ string) (string, error) {
		i, err := sel.Value()
		if err != nil {
			return "", err
		}
		return inputs[i].Value()
	})
	runs := 0
	_, err := weft.Effect(g, func() error {
		runs++
		_, err := mux.Value()
		return err
	})
	require.NoError(t, err)

	for round := 0; round < 10; round++ {
		set(t, sel, (round+1)%3)
	}
	assert.Equal(t, 11, runs)

	// Only the currently selected input reaches the mux.
	set(t, inputs[0], "z")
	assert.Equal(t, 11, runs)
	set(t, inputs[1], "y")
	assert.Equal(t, 12, runs)
	assert.Equal(t, "y", val[string](t, mux))
}
