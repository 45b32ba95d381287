package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := OpenSQLite(filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKVGetMissingKey(t *testing.T) {
	kv := openTestSQLite(t)
	if _, err := kv.Get("todos"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing key: got %v, want ErrNotFound", err)
	}
}

func TestSQLiteKVSetThenGet(t *testing.T) {
	kv := openTestSQLite(t)
	if err := kv.Set("todos", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	b, err := kv.Get("todos")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(b) != `[{"id":1}]` {
		t.Errorf("Get: got %q", b)
	}
}

func TestSQLiteKVSetOverwrites(t *testing.T) {
	kv := openTestSQLite(t)
	if err := kv.Set("todos", []byte("old")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Set("todos", []byte("new")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	b, err := kv.Get("todos")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(b) != "new" {
		t.Errorf("Get after overwrite: got %q, want %q", b, "new")
	}
}

func TestSQLiteKVSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")
	kv, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := kv.Set("todos", []byte("persisted")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	kv2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer kv2.Close()
	b, err := kv2.Get("todos")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if string(b) != "persisted" {
		t.Errorf("Get after reopen: got %q", b)
	}
}
