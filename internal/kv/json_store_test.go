package kv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "habito.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return store
}

func TestJSONStoreInitTwice(t *testing.T) {
	store := newTestStore(t)
	if err := store.Init(); err == nil {
		t.Error("expected error when initializing twice")
	}
}

func TestJSONStoreLoadMissing(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("expected ErrNotLoaded, got %v", err)
	}
}

func TestJSONStoreNotLoadedGuards(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habito.json"))

	if _, _, err := store.Get("k"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Get: expected ErrNotLoaded, got %v", err)
	}
	if err := store.Set("k", "v"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Set: expected ErrNotLoaded, got %v", err)
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.Set("alpha", "one"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set("beta", "two"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	val, ok, err := store.Get("alpha")
	if err != nil || !ok || val != "one" {
		t.Errorf("got (%q, %v, %v), want (one, true, nil)", val, ok, err)
	}

	// A fresh instance over the same file sees the persisted data.
	reopened := NewJSONStore(store.ConfigPath())
	if err := reopened.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	val, ok, err = reopened.Get("beta")
	if err != nil || !ok || val != "two" {
		t.Errorf("got (%q, %v, %v), want (two, true, nil)", val, ok, err)
	}
}

func TestJSONStoreGetMissingKey(t *testing.T) {
	store := newTestStore(t)
	_, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestJSONStoreDelete(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := store.Get("k"); ok {
		t.Error("key still present after delete")
	}

	// Deleting an absent key is not an error.
	if err := store.Delete("nope"); err != nil {
		t.Errorf("deleting absent key: %v", err)
	}
}

func TestJSONStoreKeysSorted(t *testing.T) {
	store := newTestStore(t)
	for _, k := range []string{"c", "a", "b"} {
		if err := store.Set(k, "v"); err != nil {
			t.Fatal(err)
		}
	}
	keys, err := store.Keys()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habito.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	store := NewJSONStore(path)
	if err := store.Load(); err == nil {
		t.Error("expected error loading corrupt file")
	}
}
