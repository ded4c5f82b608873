package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vanderheijden86/gantry/pkg/timescale"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Mode() != timescale.ModeMonth {
		t.Fatalf("default mode = %s, want month", cfg.Mode())
	}
	if cfg.Theme.Primary == "" {
		t.Fatal("defaults missing theme")
	}
}

func TestSaveTo_LoadFrom_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.DefaultMode = string(timescale.ModeWeekPart)
	cfg.Theme.Primary = "#112233"
	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Mode() != timescale.ModeWeekPart {
		t.Fatalf("mode = %s, want week-part", loaded.Mode())
	}
	if loaded.Theme.Primary != "#112233" {
		t.Fatalf("theme primary = %s", loaded.Theme.Primary)
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestMode_FallsBackOnGarbage(t *testing.T) {
	cfg := Config{UI: UIConfig{DefaultMode: "fortnight"}}
	if cfg.Mode() != timescale.ModeMonth {
		t.Fatalf("mode = %s, want month fallback", cfg.Mode())
	}
}

func TestExportState_RoundTrip(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	// Nothing saved yet: zero value, no error surface.
	if st := LoadExportState(); st.Format != "" {
		t.Fatalf("fresh state = %+v", st)
	}

	want := ExportState{Format: "both", Dir: "/tmp/out", Title: "Q2 Plan", WeekTicks: true}
	if err := SaveExportState(want); err != nil {
		t.Fatalf("SaveExportState: %v", err)
	}
	if got := LoadExportState(); got != want {
		t.Fatalf("LoadExportState = %+v, want %+v", got, want)
	}
}

func TestExportState_CorruptFileIsIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "gantry"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "gantry", "export_state.json"), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if st := LoadExportState(); st != (ExportState{}) {
		t.Fatalf("corrupt state file should read as zero value, got %+v", st)
	}
}
