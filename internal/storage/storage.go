// Package storage persists generated Zobrist key tables in BadgerDB so a
// build can pin the exact table it shipped with and regenerate artifacts
// from it later.
package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/salmancheema155/chesshash/internal/zobrist"
)

const tablePrefix = "table/"

// Record is a named, archived key table together with the seed that
// produced it.
type Record struct {
	Name      string         `json:"name"`
	Seed      uint64         `json:"seed"`
	CreatedAt time.Time      `json:"created_at"`
	Table     *zobrist.Table `json:"table"`
}

// Store wraps BadgerDB for key-table archival.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) an archive at the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive at %s", dir)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a non-persistent archive, used in tests.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory archive")
	}
	return &Store{db: db}, nil
}

// Close closes the archive.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveTable archives a table under the given name. The table is validated
// first; an incomplete or duplicate-keyed table is never persisted.
func (s *Store) SaveTable(name string, seed uint64, t *zobrist.Table) error {
	if name == "" {
		return errors.New("table name must not be empty")
	}
	if err := t.Validate(); err != nil {
		return errors.Wrapf(err, "refusing to archive table %q", name)
	}

	rec := Record{
		Name:      name,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
		Table:     t,
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		return errors.Wrap(err, "encoding table record")
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(tablePrefix+name), data)
	})
}

// LoadTable retrieves an archived table by name.
func (s *Store) LoadTable(name string) (*Record, error) {
	var rec Record

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tablePrefix + name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, errors.Errorf("no archived table named %q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "loading table %q", name)
	}

	// Guard against corruption between archive versions. A record written
	// without its key table decodes cleanly with a nil Table, so check
	// that before validating the keys themselves.
	if rec.Table == nil {
		return nil, errors.Errorf("archived table %q is corrupt: record has no key table", name)
	}
	if err := rec.Table.Validate(); err != nil {
		return nil, errors.Wrapf(err, "archived table %q is corrupt", name)
	}
	return &rec, nil
}

// ListTables returns the names of all archived tables.
func (s *Store) ListTables() ([]string, error) {
	var names []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(tablePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing archived tables")
	}
	return names, nil
}
