package strata

import (
	"bytes"
	"errors"
)

// Appender overrides Merge with append semantics: the merged payload is
// the stored bytes followed by the new bytes. Merging into a missing
// reference starts from empty. All other operations pass through.
type Appender struct {
	Passthrough
}

func NewAppender(inner Storage) *Appender {
	return &Appender{Passthrough{inner: inner}}
}

func (a Appender) Merge(r Ref, i interface{}) error {
	w := new(bytes.Buffer)
	if original, err := a.inner.Get(r); err == nil {
		buf, err := Blob(original)
		if err != nil {
			return err
		}
		w.Write(buf)
	} else if !errors.Is(err, NotFound) {
		return err
	}
	buf, err := Blob(i)
	if err != nil {
		return err
	}
	w.Write(buf)
	return a.inner.Put(r, w.Bytes())
}
