package kv_test

import (
	"path/filepath"
	"testing"

	"github.com/takafulhq/takaful/internal/app/store/kv"
	"github.com/takafulhq/takaful/internal/testutil"
)

func backends(t *testing.T) map[string]kv.Store {
	t.Helper()
	sqlite, err := kv.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })
	return map[string]kv.Store{
		"memory": kv.NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStore_SetGet(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
				t.Fatalf("missing key: ok=%v err=%v", ok, err)
			}

			if err := store.Set(ctx, "k", []byte(`[{"id":"x"}]`)); err != nil {
				t.Fatalf("set: %v", err)
			}
			got, ok, err := store.Get(ctx, "k")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if string(got) != `[{"id":"x"}]` {
				t.Errorf("value mismatch: %q", got)
			}

			// Overwrite replaces, not appends.
			if err := store.Set(ctx, "k", []byte("v2")); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, _, _ = store.Get(ctx, "k")
			if string(got) != "v2" {
				t.Errorf("expected v2, got %q", got)
			}
		})
	}
}

func TestStore_DeleteAndReset(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set(ctx, "a", []byte("1")); err != nil {
				t.Fatal(err)
			}
			if err := store.Set(ctx, "b", []byte("2")); err != nil {
				t.Fatal(err)
			}

			if err := store.Delete(ctx, "a"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := store.Get(ctx, "a"); ok {
				t.Error("a should be gone")
			}
			// Deleting an absent key is not an error.
			if err := store.Delete(ctx, "a"); err != nil {
				t.Errorf("delete absent: %v", err)
			}

			if err := store.Reset(ctx); err != nil {
				t.Fatalf("reset: %v", err)
			}
			if _, ok, _ := store.Get(ctx, "b"); ok {
				t.Error("b should be gone after reset")
			}
		})
	}
}
