package strata

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemeSwitch(t *testing.T) {
	storeA, storeB := NewMemory(), NewMemory()
	sw := NewSchemeSwitch(map[string]Storage{
		"a": storeA,
		"b": storeB,
	})

	ra := NewRef("a", "/k")
	require.NoError(t, sw.Put(ra, "for a"))

	// the other route is never touched
	require.Equal(t, 1, storeA.Len())
	require.Equal(t, 0, storeB.Len())

	got, err := sw.Get(ra)
	require.NoError(t, err)
	require.Equal(t, "for a", got)

	_, err = sw.Get(NewRef("c", "/k"))
	require.ErrorIs(t, err, NotFound)
	require.ErrorIs(t, sw.Put(NewRef("c", "/k"), "x"), NotFound)
}

func TestFirstPathSwitch(t *testing.T) {
	users, logs := NewMemory(), NewMemory()
	sw := NewFirstPathSwitch(map[string]Storage{
		"users": users,
		"logs":  logs,
	})

	r := NewRef("any", "/users/42")
	require.NoError(t, sw.Put(r, "alice"))
	require.NoError(t, sw.Merge(NewRef("any", "/logs/today"), "line"))

	got, err := users.Get(r)
	require.NoError(t, err)
	require.Equal(t, "alice", got)
	require.Equal(t, 1, logs.Len())

	require.ErrorIs(t, sw.Delete(NewRef("any", "/tmp/x")), NotFound)
}
