package strata

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRefPathComponents(t *testing.T) {
	for _, tc := range []struct {
		path string
		want []string
	}{
		{"/a/b/c", []string{"a", "b", "c"}},
		{"a/b", []string{"a", "b"}},
		{"//x", []string{"x"}},
		{"", []string{""}},
	} {
		got := NewRef("test", tc.path).PathComponents()
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("path %q: (-want +got):\n%s", tc.path, diff)
		}
	}
}

func TestRefIdentity(t *testing.T) {
	// refs are compared by (scheme, path) pair, never by object identity
	m := map[Ref]string{
		NewRef("a", "/x"): "first",
	}
	require.Equal(t, "first", m[NewRef("a", "/x")])
	_, ok := m[NewRef("b", "/x")]
	require.False(t, ok)
	require.Equal(t, "a:/x", NewRef("a", "/x").String())
}
