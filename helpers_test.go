package weft_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/weftworks/weft"
)

func val[T comparable](t *testing.T, r weft.Readable[T]) T {
	t.Helper()
	v, err := r.Value()
	require.NoError(t, err)
	return v
}

func set[T comparable](t *testing.T, s *weft.WriteableSignal[T], v T) {
	t.Helper()
	require.NoError(t, s.Set(v))
}
