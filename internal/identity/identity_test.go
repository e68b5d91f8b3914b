package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestLoadOrCreateIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "user_id")

	first, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() failed: %v", err)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("id %q is not a UUID: %v", first, err)
	}

	second, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() second call failed: %v", err)
	}
	if first != second {
		t.Errorf("id changed between calls: %q then %q", first, second)
	}
}

func TestLoadOrCreateReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_id")
	if err := os.WriteFile(path, []byte("not-a-uuid"), 0o600); err != nil {
		t.Fatal(err)
	}

	id, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("id %q is not a UUID", id)
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_id")

	if got, _ := Resolve("  ada ", path); got != "ada" {
		t.Errorf("Resolve(ada) = %q", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("override should not create the id file")
	}

	got, err := Resolve("", path)
	if err != nil || got == "" {
		t.Errorf("Resolve(\"\") = %q, %v", got, err)
	}
}
