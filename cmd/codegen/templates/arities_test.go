package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rendered output should cover every arity up to count
func TestMapGenArities(t *testing.T) {
	out := MapGen(3)

	assert.True(t, strings.HasPrefix(out, "// Code generated by cmd/codegen; DO NOT EDIT."))
	assert.Contains(t, out, "package weft")
	for _, want := range []string{
		"func Map1[T0, O comparable](",
		"func Map2[T0, T1, O comparable](",
		"func Map3[T0, T1, T2, O comparable](",
		"func Watch3[T0, T1, T2 comparable](",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "func Map4")
}

func TestPrefixedStrings(t *testing.T) {
	assert.Equal(t, "v0", prefixedStrings("v", 1))
	assert.Equal(t, "T0, T1, T2", prefixedStrings("T", 3))
	assert.Equal(t, "", prefixedStrings("T", 0))
}
