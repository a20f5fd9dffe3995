package strata

import (
	"fmt"
	"os"
)

// DiskText stores one file per reference path and replaces content
// crash-safely: a Put either installs the new content in full or leaves
// the previous content intact, never a torn or missing file. Payloads
// are read back as strings; see DiskBytes for the raw variant.
//
// Delete fails when the file does not exist, in contrast with the
// in-memory store's silent delete. The asymmetry is deliberate.
type DiskText struct {
	disk
}

// DiskBytes is DiskText for raw byte payloads.
type DiskBytes struct {
	disk
}

func NewDiskText() *DiskText {
	return &DiskText{disk{rename: os.Rename}}
}

func NewDiskBytes() *DiskBytes {
	return &DiskBytes{disk{rename: os.Rename}}
}

type disk struct {
	rename func(oldpath, newpath string) error // replaceable for failure injection
}

// put writes buf to a sibling temp file, stages the current content of
// the target as a rollback snapshot, then renames the temp file into
// place. If the rename fails the snapshot is written back verbatim and
// the temp file removed, so the target keeps exactly its prior state.
func (d disk) put(r Ref, buf []byte) error {
	target := r.Path
	temp := target + ".tmp"
	if err := os.WriteFile(temp, buf, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", IOFailure, temp, err)
	}
	var snapshot []byte
	var staged bool
	if fi, err := os.Stat(target); err == nil && fi.Mode().IsRegular() {
		snapshot, err = os.ReadFile(target)
		if err != nil {
			os.Remove(temp)
			return fmt.Errorf("%w: staging %s: %v", IOFailure, target, err)
		}
		staged = true
	}
	if err := d.rename(temp, target); err != nil {
		if staged {
			os.Remove(target)
			if werr := os.WriteFile(target, snapshot, 0644); werr != nil {
				os.Remove(temp)
				return fmt.Errorf("%w: restoring %s: %v", IOFailure, target, werr)
			}
		}
		os.Remove(temp)
		return fmt.Errorf("%w: replacing %s: %v", IOFailure, target, err)
	}
	return nil
}

func (d disk) del(r Ref) error {
	if err := os.Remove(r.Path); err != nil {
		return fmt.Errorf("%w: deleting %s: %v", IOFailure, r.Path, err)
	}
	return nil
}

func (d DiskText) Get(r Ref) (interface{}, error) {
	buf, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, wrapNotFound(r, err)
	}
	return string(buf), nil
}

func (d DiskText) Put(r Ref, i interface{}) error {
	s, err := Text(i)
	if err != nil {
		return err
	}
	return d.put(r, []byte(s))
}

func (d DiskText) Merge(r Ref, i interface{}) error {
	return d.Put(r, i)
}

func (d DiskText) Delete(r Ref) error {
	return d.del(r)
}

func (d DiskBytes) Get(r Ref) (interface{}, error) {
	buf, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, wrapNotFound(r, err)
	}
	return buf, nil
}

func (d DiskBytes) Put(r Ref, i interface{}) error {
	buf, err := Blob(i)
	if err != nil {
		return err
	}
	return d.put(r, buf)
}

func (d DiskBytes) Merge(r Ref, i interface{}) error {
	return d.Put(r, i)
}

func (d DiskBytes) Delete(r Ref) error {
	return d.del(r)
}
