// Package identity provides the anonymous local user id. The engine treats
// user ids as opaque strings; embeddings with real authentication pass their
// own id instead.
package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultPath is where the local id is kept.
const DefaultPath = "~/.jungle/user_id"

// LoadOrCreate reads the id stored at path, creating and saving a new random
// id when the file is missing or does not hold a valid UUID.
func LoadOrCreate(path string) (string, error) {
	path, err := expandHome(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if id, perr := uuid.Parse(strings.TrimSpace(string(data))); perr == nil {
			return id.String(), nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("identity: cannot read %s: %w", path, err)
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("identity: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("identity: cannot save id: %w", err)
	}
	return id, nil
}

// Resolve returns override when set, else the stored local id.
func Resolve(override, path string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		return override, nil
	}
	return LoadOrCreate(path)
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("identity: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
