package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name == "" {
		t.Error("expected a non-empty default name")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("zig-zag")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Waypoints) != 7 {
		t.Errorf("expected 7 waypoints, got %d", len(cfg.Waypoints))
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d preset names, got %d", len(Presets), len(names))
	}
}

func TestValidateRejectsMismatchedDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxVelocity = []float64{1, 1}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for mismatched max_velocity dimension")
	}
}

func TestValidateRejectsSingleWaypoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Waypoints = cfg.Waypoints[:1]
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for a single waypoint")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")

	original := GetPreset("right-angle-blended")
	if err := Save(path, original); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != original.Name || loaded.MaxDeviation != original.MaxDeviation {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, original)
	}
	if len(loaded.Waypoints) != len(original.Waypoints) {
		t.Errorf("round trip lost waypoints: got %d, want %d", len(loaded.Waypoints), len(original.Waypoints))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error loading a missing file")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("waypoints: [[0,0,0]]\n"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error loading a single-waypoint config")
	}
}
