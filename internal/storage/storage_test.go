package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

// memStore is an in-memory ObjectStore for tests.
type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (m *memStore) Download(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := m.objects[key]
	return data, ok, nil
}

func (m *memStore) Upload(_ context.Context, key string, data []byte, _ string) error {
	m.objects[key] = data
	return nil
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("missing file", func(t *testing.T) {
		var v map[string]string
		found, err := store.LoadJSON("missing.json", &v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected found=false for missing file")
		}
	})

	t.Run("corrupt file degrades to empty", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{nope"), 0644); err != nil {
			t.Fatal(err)
		}
		var v map[string]string
		found, err := store.LoadJSON("corrupt.json", &v)
		if err != nil {
			t.Fatalf("corrupt state must not be fatal: %v", err)
		}
		if found {
			t.Error("expected found=false for corrupt file")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		in := map[string]int{"a": 1, "b": 2}
		if err := store.SaveJSON("data.json", in); err != nil {
			t.Fatalf("SaveJSON: %v", err)
		}

		var out map[string]int
		found, err := store.LoadJSON("data.json", &out)
		if err != nil || !found {
			t.Fatalf("LoadJSON: found=%v err=%v", found, err)
		}
		if out["a"] != 1 || out["b"] != 2 {
			t.Errorf("unexpected round-trip result: %v", out)
		}
	})
}

func TestPullPush(t *testing.T) {
	ctx := context.Background()
	remote := newMemStore()
	remote.objects[EventsFile] = []byte(`[{"slug":"s1"}]`)

	dir := t.TempDir()
	store, err := New(dir, remote)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("pull writes local copy", func(t *testing.T) {
		if err := store.Pull(ctx, EventsFile); err != nil {
			t.Fatalf("Pull: %v", err)
		}
		data, err := os.ReadFile(store.Path(EventsFile))
		if err != nil {
			t.Fatalf("local copy missing: %v", err)
		}
		if string(data) != `[{"slug":"s1"}]` {
			t.Errorf("unexpected content: %s", data)
		}
	})

	t.Run("pull of absent key is not an error", func(t *testing.T) {
		if err := store.Pull(ctx, "never-uploaded.json"); err != nil {
			t.Fatalf("Pull: %v", err)
		}
		if _, err := os.Stat(store.Path("never-uploaded.json")); !os.IsNotExist(err) {
			t.Error("absent remote key should not create a local file")
		}
	})

	t.Run("push uploads local files and skips missing ones", func(t *testing.T) {
		if err := store.SaveJSON(StatusFile, map[string]bool{"all_success": true}); err != nil {
			t.Fatal(err)
		}
		if err := store.Push(ctx, StatusFile, "does-not-exist.json"); err != nil {
			t.Fatalf("Push: %v", err)
		}
		if _, ok := remote.objects[StatusFile]; !ok {
			t.Error("status file not uploaded")
		}
		if _, ok := remote.objects["does-not-exist.json"]; ok {
			t.Error("missing local file should be skipped, not uploaded")
		}
	})
}

func TestLocalOnlyStore(t *testing.T) {
	store, err := New(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := store.Pull(context.Background(), EventsFile); err != nil {
		t.Errorf("Pull without remote should be a no-op, got %v", err)
	}
	if err := store.Push(context.Background(), EventsFile); err != nil {
		t.Errorf("Push without remote should be a no-op, got %v", err)
	}
}
