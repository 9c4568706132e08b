package weft_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weftworks/weft"
)

// mapped nodes should combine heterogeneous inputs lazily
func TestMapCombinesInputs(t *testing.T) {
	g := weft.NewGraph()
	name := weft.Signal(g, "answer")
	n := weft.Signal(g, 42)
	runs := 0
	label := weft.Map2(g, name, n, func(s string, v int) string {
		runs++
		return fmt.Sprintf("%s=%d", s, v)
	})
	assert.Equal(t, 0, runs)

	assert.Equal(t, "answer=42", val[string](t, label))
	set(t, n, 43)
	assert.Equal(t, "answer=43", val[string](t, label))
	assert.Equal(t, 2, runs)
}

// higher arities should track every input
func TestMapHigherArity(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 1)
	b := weft.Signal(g, 2)
	c := weft.Signal(g, 3)
	d := weft.Signal(g, 4)
	sum := weft.Map4(g, a, b, c, d, func(w, x, y, z int) int {
		return w + x + y + z
	})

	assert.Equal(t, 10, val[int](t, sum))
	set(t, c, 30)
	assert.Equal(t, 37, val[int](t, sum))
}

// maps should compose with other maps
func TestMapComposes(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 2)
	sq := weft.Map1(g, a, func(v int) int { return v * v })
	label := weft.Map2(g, a, sq, func(v, s int) string {
		return fmt.Sprintf("%d^2=%d", v, s)
	})

	assert.Equal(t, "2^2=4", val[string](t, label))
	set(t, a, 5)
	assert.Equal(t, "5^2=25", val[string](t, label))
}

// watchers should run immediately and on every change to any input
func TestWatchRuns(t *testing.T) {
	g := weft.NewGraph()
	a := weft.Signal(g, 1)
	b := weft.Signal(g, 2)
	var got []int
	stop, err := weft.Watch2(g, a, b, func(x, y int) error {
		got = append(got, x+y)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{3}, got)

	set(t, a, 10)
	set(t, b, 20)
	assert.Equal(t, []int{3, 12, 30}, got)

	stop()
	set(t, a, 100)
	assert.Equal(t, []int{3, 12, 30}, got)
}
