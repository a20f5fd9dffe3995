package strata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodedRefs(t *testing.T) {
	inner := NewMemory()
	e := NewEncodedRefs(inner)
	r := NewRef("mem", "/deeply/nested/path")
	require.NoError(t, e.Put(r, "v"))

	got, err := e.Get(r)
	require.NoError(t, err)
	require.Equal(t, "v", got)

	// the inner store sees a flat, slash-free path under the same scheme
	er, err := encodeRef(r)
	require.NoError(t, err)
	require.Equal(t, "mem", er.Scheme)
	require.False(t, strings.Contains(er.Path, "/"))
	stored, err := inner.Get(er)
	require.NoError(t, err)
	require.Equal(t, "v", stored)

	// deterministic: the same ref always encodes the same way
	er2, err := encodeRef(r)
	require.NoError(t, err)
	require.Equal(t, er, er2)

	require.NoError(t, e.Delete(r))
	require.Equal(t, 0, inner.Len())
}

func TestBase58RoundTrip(t *testing.T) {
	in := []byte{0, 1, 2, 250}
	out, err := Base58Decode(Base58Encode(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}
