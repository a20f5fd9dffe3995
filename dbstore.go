package strata

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
)

// DBStore is a durable leaf over a single SQL table keyed by scheme and
// path, storing payloads as raw bytes. Like the in-memory store, and
// unlike the disk stores, deleting a missing row is a silent no-op.
type DBStore struct {
	db *sql.DB
}

const dbSchema = `
CREATE TABLE IF NOT EXISTS storage (
	scheme TEXT NOT NULL,
	path   TEXT NOT NULL,
	value  BLOB NOT NULL,
	PRIMARY KEY (scheme, path)
)`

func NewDBStore(db *sql.DB) (*DBStore, error) {
	if _, err := db.Exec(dbSchema); err != nil {
		return nil, errors.Wrap(err, "creating storage table")
	}
	return &DBStore{db: db}, nil
}

func (s *DBStore) Get(r Ref) (interface{}, error) {
	var value []byte
	err := s.db.QueryRow(
		`SELECT value FROM storage WHERE scheme = ? AND path = ?`,
		r.Scheme, r.Path,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w (%v)", NotFound, r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: querying %v: %v", IOFailure, r, err)
	}
	return value, nil
}

func (s *DBStore) Put(r Ref, i interface{}) error {
	buf, err := Blob(i)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(
		`INSERT INTO storage (scheme, path, value) VALUES (?, ?, ?)
		ON CONFLICT (scheme, path) DO UPDATE SET value = excluded.value`,
		r.Scheme, r.Path, buf,
	); err != nil {
		return fmt.Errorf("%w: upserting %v: %v", IOFailure, r, err)
	}
	return nil
}

func (s *DBStore) Merge(r Ref, i interface{}) error {
	return s.Put(r, i)
}

func (s *DBStore) Delete(r Ref) error {
	if _, err := s.db.Exec(
		`DELETE FROM storage WHERE scheme = ? AND path = ?`,
		r.Scheme, r.Path,
	); err != nil {
		return fmt.Errorf("%w: deleting %v: %v", IOFailure, r, err)
	}
	return nil
}
