package filekv

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
)

func TestStore_GetMissing(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "store"))

	value, ok, err := store.Get("devtaskmanager_issues")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Get() ok = true, want false (value %q)", value)
	}
}

func TestStore_SetAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "store")
	store := New(dir)

	if err := store.Set("issues", `[{"id":"1","status":"Backlog"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// File should exist under the key name
	content, err := os.ReadFile(filepath.Join(dir, "issues.json"))
	if err != nil {
		t.Fatalf("store file not created: %v", err)
	}
	if string(content) != `[{"id":"1","status":"Backlog"}]` {
		t.Errorf("file content = %q", content)
	}

	value, ok, err := store.Get("issues")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if value != `[{"id":"1","status":"Backlog"}]` {
		t.Errorf("Get() = %q", value)
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Set("k", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set("k", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, _, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "second" {
		t.Errorf("Get() = %q, want second", value)
	}

	// No temp file should remain
	if _, err := os.Stat(filepath.Join(store.Dir(), "k.json.tmp")); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestStore_InvalidKey(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"", "../escape", "a/b", ".lock"} {
		if err := store.Set(key, "x"); err == nil {
			t.Errorf("Set(%q) error = nil, want error", key)
		}
		if _, _, err := store.Get(key); err == nil {
			t.Errorf("Get(%q) error = nil, want error", key)
		}
	}
}

func TestStore_InvalidKeyWrapsDomainError(t *testing.T) {
	store := New(t.TempDir())
	err := store.Set("a/b", "x")
	if !errors.Is(err, domain.ErrInvalidKey) {
		t.Errorf("Set() error = %v, want ErrInvalidKey", err)
	}
}

func TestStore_SharedAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)
	b := New(dir)

	if err := a.Set("k", "from-a"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	value, ok, err := b.Get("k")
	if err != nil || !ok || value != "from-a" {
		t.Errorf("Get() = %q, %v, %v", value, ok, err)
	}
}

func TestStore_ConcurrentWriters(t *testing.T) {
	dir := t.TempDir()
	shared := New(dir)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store := shared
			if i%2 == 0 {
				store = New(dir)
			}
			if err := store.Set("k", "value"); err != nil {
				t.Errorf("Set() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	value, ok, err := New(dir).Get("k")
	if err != nil || !ok || value != "value" {
		t.Errorf("Get() = %q, %v, %v", value, ok, err)
	}
}
