package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Serialize renders the registry as indented JSON. Map keys marshal in
// sorted order, so the same registry always produces the same bytes; the
// only run-to-run differences are the timestamp and generation id.
func Serialize(reg *Registry) ([]byte, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize registry: %w", err)
	}
	return append(data, '\n'), nil
}

// Write serializes the registry to path, creating parent directories.
func Write(reg *Registry, path string) error {
	data, err := Serialize(reg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return nil
}
