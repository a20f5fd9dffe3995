package strata

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiskTextRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := NewDiskText()
	r := NewRef("file", filepath.Join(dir, "greeting"))
	require.NoError(t, d.Put(r, "howdy\n"))
	got, err := d.Get(r)
	require.NoError(t, err)
	require.Equal(t, "howdy\n", got)

	// merge is full replacement for disk stores
	require.NoError(t, d.Merge(r, "replaced"))
	got, err = d.Get(r)
	require.NoError(t, err)
	require.Equal(t, "replaced", got)
}

func TestDiskBytesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	d := NewDiskBytes()
	r := NewRef("file", filepath.Join(dir, "blob"))
	payload := []byte{0, 1, 2, 0xff}
	require.NoError(t, d.Put(r, payload))
	got, err := d.Get(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestDiskGetMissing(t *testing.T) {
	d := NewDiskText()
	_, err := d.Get(NewRef("file", filepath.Join(t.TempDir(), "nope")))
	require.ErrorIs(t, err, NotFound)
}

func TestDiskDeleteMissing(t *testing.T) {
	// disk delete of a missing file fails, unlike the in-memory store
	d := NewDiskText()
	err := d.Delete(NewRef("file", filepath.Join(t.TempDir(), "nope")))
	require.ErrorIs(t, err, IOFailure)
}

func TestDiskPutRollback(t *testing.T) {
	dir := t.TempDir()
	d := NewDiskText()
	r := NewRef("file", filepath.Join(dir, "data"))
	require.NoError(t, d.Put(r, "version one"))

	d.rename = func(oldpath, newpath string) error {
		return fmt.Errorf("injected rename failure")
	}
	err := d.Put(r, "version two")
	require.ErrorIs(t, err, IOFailure)

	// prior content restored verbatim, no temp file left behind
	got, gerr := d.Get(r)
	require.NoError(t, gerr)
	require.Equal(t, "version one", got)
	_, serr := os.Stat(r.Path + ".tmp")
	require.True(t, os.IsNotExist(serr))
}

func TestDiskPutRollbackNoPrior(t *testing.T) {
	dir := t.TempDir()
	d := NewDiskBytes()
	r := NewRef("file", filepath.Join(dir, "fresh"))
	d.rename = func(oldpath, newpath string) error {
		return fmt.Errorf("injected rename failure")
	}
	require.ErrorIs(t, d.Put(r, []byte("x")), IOFailure)
	_, err := os.Stat(r.Path)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(r.Path + ".tmp")
	require.True(t, os.IsNotExist(err))
}
