package memkv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissing(t *testing.T) {
	s := New()
	v, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_SetGet(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("k", "[]"))
	require.NoError(t, s.Set("k", `[{"id":"1"}]`))

	v, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, v)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("k", "v"))

	snap := s.Snapshot()
	snap["k"] = "changed"

	v, _, _ := s.Get("k")
	assert.Equal(t, "v", v)
}
