package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoRecord is returned when a collection has no record with the
// requested id.
var ErrNoRecord = errors.New("no record")

// FileDB is a flat JSON document store over a single db.json file: a
// top-level object mapping collection names to arrays of records, each
// record carrying an "id" field. This is the same file layout the
// generic mock REST servers persist to, so an existing data file loads
// as-is.
//
// Every write rewrites the whole file atomically (temp file + rename).
// Good enough for a store whose whole dataset is a few hundred records.
type FileDB struct {
	mu   sync.RWMutex
	path string

	collections map[string][]json.RawMessage
}

type idOnly struct {
	ID string `json:"id"`
}

// OpenFile loads the store from path, creating an empty one when the
// file does not exist yet.
func OpenFile(path string) (*FileDB, error) {
	db := &FileDB{
		path:        path,
		collections: make(map[string][]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return db, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if err := json.Unmarshal(raw, &db.collections); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}

	return db, nil
}

// All returns the raw records of a collection. A collection that was
// never written is empty, not an error.
func (db *FileDB) All(collection string) ([]json.RawMessage, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	records := db.collections[collection]
	out := make([]json.RawMessage, len(records))
	copy(out, records)
	return out, nil
}

// Get returns the record with the given id, or ErrNoRecord.
func (db *FileDB) Get(collection, id string) (json.RawMessage, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	if _, record := db.find(collection, id); record != nil {
		return record, nil
	}
	return nil, ErrNoRecord
}

// Insert appends a record. The document must already carry its id.
func (db *FileDB) Insert(collection string, doc json.RawMessage) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.collections[collection] = append(db.collections[collection], doc)
	return db.persist()
}

// Update replaces the record with the given id, or ErrNoRecord.
func (db *FileDB) Update(collection, id string, doc json.RawMessage) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	idx, record := db.find(collection, id)
	if record == nil {
		return ErrNoRecord
	}

	db.collections[collection][idx] = doc
	return db.persist()
}

// Delete removes the record with the given id, or ErrNoRecord. Nothing
// cascades: dependents keep their dangling references.
func (db *FileDB) Delete(collection, id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	idx, record := db.find(collection, id)
	if record == nil {
		return ErrNoRecord
	}

	records := db.collections[collection]
	db.collections[collection] = append(records[:idx], records[idx+1:]...)
	return db.persist()
}

// find locates a record by id. Callers hold the lock.
func (db *FileDB) find(collection, id string) (int, json.RawMessage) {
	for i, record := range db.collections[collection] {
		var peek idOnly
		if err := json.Unmarshal(record, &peek); err != nil {
			continue
		}
		if peek.ID == id {
			return i, record
		}
	}
	return -1, nil
}

// persist writes the whole store out atomically. Callers hold the lock.
func (db *FileDB) persist() error {
	// Keep empty collections as [] in the file, not null.
	for name, records := range db.collections {
		if records == nil {
			db.collections[name] = []json.RawMessage{}
		}
	}

	raw, err := json.MarshalIndent(db.collections, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(db.path), ".db-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), db.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}
