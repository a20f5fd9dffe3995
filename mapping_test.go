package strata

import (
	"encoding/gob"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMapperIdentity(t *testing.T) {
	mem := NewMemory()
	m := NewMapper(mem)
	r := NewRef("mem", "/x")
	require.NoError(t, m.Put(r, "payload"))
	got, err := m.Get(r)
	require.NoError(t, err)
	require.Equal(t, "payload", got)
	require.NoError(t, m.Delete(r))
	_, err = m.Get(r)
	require.ErrorIs(t, err, NotFound)
}

func TestJSONMapperRoundTrip(t *testing.T) {
	mem := NewMemory()
	j := NewJSONMapper(mem)
	r := NewRef("mem", "/doc")
	in := map[string]interface{}{
		"name":  "strata",
		"count": 3.0,
		"tags":  []interface{}{"a", "b"},
	}
	require.NoError(t, j.Put(r, in))

	// the inner store holds text, not the structured value
	stored, err := mem.Get(r)
	require.NoError(t, err)
	require.IsType(t, "", stored)

	out, err := j.Get(r)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestJSONMapperMalformed(t *testing.T) {
	mem := NewMemory()
	r := NewRef("mem", "/doc")
	require.NoError(t, mem.Put(r, "{not json"))
	_, err := NewJSONMapper(mem).Get(r)
	require.ErrorIs(t, err, EncodingError)
}

func TestGobMapperRoundTrip(t *testing.T) {
	gob.Register(map[string]int{})
	mem := NewMemory()
	g := NewGobMapper(mem)
	r := NewRef("mem", "/native")
	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, g.Put(r, in))

	stored, err := mem.Get(r)
	require.NoError(t, err)
	require.IsType(t, []byte(nil), stored)

	out, err := g.Get(r)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestGobMapperMalformed(t *testing.T) {
	mem := NewMemory()
	r := NewRef("mem", "/native")
	require.NoError(t, mem.Put(r, []byte("garbage")))
	_, err := NewGobMapper(mem).Get(r)
	require.ErrorIs(t, err, EncodingError)
}

func TestPrefixMapper(t *testing.T) {
	mem := NewMemory()
	p, err := NewPrefixMapper(mem, "/var/data")
	require.NoError(t, err)
	r := NewRef("file", "/a/b")
	require.NoError(t, p.Put(r, "v"))

	// scheme untouched, path rooted at the base dir
	got, err := mem.Get(NewRef("file", "/var/data/a/b"))
	require.NoError(t, err)
	require.Equal(t, "v", got)

	got, err = p.Get(r)
	require.NoError(t, err)
	require.Equal(t, "v", got)

	require.NoError(t, p.Delete(r))
	_, err = mem.Get(NewRef("file", "/var/data/a/b"))
	require.ErrorIs(t, err, NotFound)
}

func TestPrefixMapperBadBase(t *testing.T) {
	_, err := NewPrefixMapper(NewMemory(), "")
	require.ErrorIs(t, err, ConfigError)
}

func TestJSONOverDisk(t *testing.T) {
	// mapper stack over a durable leaf: prefix roots the space, json
	// provides the codec
	dir := t.TempDir()
	p, err := NewPrefixMapper(NewDiskText(), dir)
	require.NoError(t, err)
	j := NewJSONMapper(p)
	r := NewRef("file", "doc")
	in := []interface{}{"x", 1.5, true}
	require.NoError(t, j.Put(r, in))
	out, err := j.Get(r)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
