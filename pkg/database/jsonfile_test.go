package database

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStore(t *testing.T) *FileDB {
	t.Helper()
	db, err := OpenFile(filepath.Join(t.TempDir(), "db.json"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return db
}

func TestOpenFile_MissingFileIsEmptyStore(t *testing.T) {
	db := tempStore(t)

	records, err := db.All("filmes")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %d", len(records))
	}
}

func TestOpenFile_LoadsExistingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	seed := `{"filmes":[{"id":"m1","titulo":"Filme"}],"salas":[]}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	db, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	record, err := db.Get("filmes", "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(string(record), `"titulo":"Filme"`) {
		t.Fatalf("unexpected record: %s", record)
	}
}

func TestOpenFile_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := OpenFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFileDB_CRUDAndMissingRecords(t *testing.T) {
	db := tempStore(t)

	if _, err := db.Get("filmes", "m1"); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
	if err := db.Update("filmes", "m1", json.RawMessage(`{"id":"m1"}`)); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
	if err := db.Delete("filmes", "m1"); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}

	if err := db.Insert("filmes", json.RawMessage(`{"id":"m1","titulo":"A"}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.Update("filmes", "m1", json.RawMessage(`{"id":"m1","titulo":"B"}`)); err != nil {
		t.Fatalf("update: %v", err)
	}

	record, err := db.Get("filmes", "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(string(record), `"titulo":"B"`) {
		t.Fatalf("update not applied: %s", record)
	}

	if err := db.Delete("filmes", "m1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := db.Get("filmes", "m1"); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord after delete, got %v", err)
	}
}

func TestFileDB_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	db, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Insert("salas", json.RawMessage(`{"id":"r1","nome":"Sala 1"}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	record, err := reopened.Get("salas", "r1")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !strings.Contains(string(record), `"nome":"Sala 1"`) {
		t.Fatalf("unexpected record: %s", record)
	}
}

func TestFileDB_EmptiedCollectionStaysArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	db, err := OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Insert("ingressos", json.RawMessage(`{"id":"t1"}`)); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := db.Delete("ingressos", "t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var file map[string]json.RawMessage
	if err := json.Unmarshal(raw, &file); err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if strings.TrimSpace(string(file["ingressos"])) == "null" {
		t.Fatal("emptied collection serialized as null")
	}
}
