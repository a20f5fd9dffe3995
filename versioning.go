package strata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Versioning layers write-once version history on an existing store.
// Every Put writes the payload to a fresh hashed target and appends a
// VersionRecord to the history kept at the original reference; Get
// serves the newest version. Old targets are never reclaimed.
type Versioning struct {
	c Storage
}

func NewVersioning(c Storage) *Versioning {
	return &Versioning{c: c}
}

type VersionRecord struct {
	Source  string
	Target  string
	Version int
	Time    time.Time
}

type VersionList []VersionRecord

func (v VersionList) Max() (out int) {
	for _, x := range v {
		if x.Version > out {
			out = x.Version
		}
	}
	return
}

func versionTarget(r Ref, version int) Ref {
	er, _ := encodeRef(Ref{Scheme: r.Scheme, Path: fmt.Sprintf("%s@%d", r.Path, version)})
	return er
}

func (v Versioning) load(r Ref) (VersionList, error) {
	i, err := v.c.Get(r)
	if err != nil {
		return nil, err
	}
	buf, err := Blob(i)
	if err != nil {
		return nil, err
	}
	var out VersionList
	d := json.NewDecoder(bytes.NewReader(buf))
	for {
		var rec VersionRecord
		if err := d.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%w: version history at %v: %v", EncodingError, r, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Versions returns the full history for a reference, oldest first.
func (v Versioning) Versions(r Ref) (VersionList, error) {
	return v.load(r)
}

func (v Versioning) Get(r Ref) (interface{}, error) {
	versions, err := v.load(r)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w (%v)", NotFound, r)
	}
	latest := versions[len(versions)-1]
	return v.c.Get(Ref{Scheme: r.Scheme, Path: latest.Target})
}

func (v Versioning) Put(r Ref, i interface{}) error {
	versions, err := v.load(r)
	if err != nil && !errors.Is(err, NotFound) {
		return err
	}
	next := versions.Max() + 1
	target := versionTarget(r, next)
	if err := v.c.Put(target, i); err != nil {
		return err
	}
	versions = append(versions, VersionRecord{
		Source:  r.String(),
		Target:  target.Path,
		Version: next,
		Time:    time.Now().UTC(),
	})
	w := new(bytes.Buffer)
	e := json.NewEncoder(w)
	e.SetEscapeHTML(false)
	for _, x := range versions {
		if err := e.Encode(x); err != nil {
			return fmt.Errorf("%w: %v", EncodingError, err)
		}
	}
	return v.c.Put(r, w.Bytes())
}

func (v Versioning) Merge(r Ref, i interface{}) error {
	return unimplemented(v, "Merge")
}

// Delete removes the history record only; archived targets stay behind.
func (v Versioning) Delete(r Ref) error {
	return v.c.Delete(r)
}
