package config

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// ExportState remembers the last choices made in the export wizard so the
// next run can pre-fill them. It lives in the XDG state dir, not config:
// it is cache-like and safe to delete.
type ExportState struct {
	Format    string `json:"format"`               // "svg", "png" or "both"
	Dir       string `json:"dir"`                  // output directory
	Title     string `json:"title,omitempty"`      // slide title
	WeekTicks bool   `json:"week_ticks,omitempty"` // dashed week sub-columns under month headers
}

func exportStatePath() string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "export_state.json")
}

// LoadExportState reads the remembered export options. A missing or
// corrupt state file yields zero-value state, never an error the caller
// must handle.
func LoadExportState() ExportState {
	var st ExportState
	path := exportStatePath()
	if path == "" {
		return st
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return ExportState{}
	}
	return st
}

// SaveExportState persists the export options for the next wizard run.
func SaveExportState(st ExportState) error {
	path := exportStatePath()
	if path == "" {
		return fmt.Errorf("cannot determine state directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing export state: %w", err)
	}
	return nil
}
