// Package snapshot persists the full ledger state as one JSON file.
//
// Every mutation re-serializes the entire state; the file is replaced
// atomically (write to temp, rename over). A missing or undecodable file
// yields empty collections; there is no partial recovery.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dhar7/IncomeTracker/internal/core"
)

// Data is the serialized form of the whole ledger.
type Data struct {
	Accounts    []core.Account          `json:"accounts"`
	Items       []core.Transaction      `json:"items"`
	Categories  []core.BudgetCategory   `json:"categories"`
	Allocations []core.BudgetAllocation `json:"allocations"`
}

// Load reads a snapshot from path. A missing file is a fresh install, not an
// error; a present but undecodable file is treated as corrupt. Both cases
// degrade to four empty collections.
func Load(path string) Data {
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Snapshot read failed, starting empty", "path", path, "error", err)
		}
		return Data{}
	}

	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		slog.Warn("Snapshot undecodable, starting empty", "path", path, "error", err)
		return Data{}
	}
	return d
}

// Write serializes d and atomically replaces the file at path.
func Write(path string, d Data) error {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}
