package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Subset != "train_copy" {
		t.Errorf("unexpected subset %q", cfg.Subset)
	}
	if cfg.Camera != "image_02" {
		t.Errorf("unexpected camera %q", cfg.Camera)
	}
	if cfg.Extension != "png" || cfg.Container != "mp4" {
		t.Errorf("unexpected formats: %q / %q", cfg.Extension, cfg.Container)
	}
	if cfg.FPS != 10.0 {
		t.Errorf("unexpected fps %v", cfg.FPS)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drivereel.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "fps: 25\ncamera: image_03\ncontainer: avi\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.FPS != 25 {
		t.Errorf("expected fps 25, got %v", cfg.FPS)
	}
	if cfg.Camera != "image_03" {
		t.Errorf("expected camera image_03, got %q", cfg.Camera)
	}
	if cfg.Container != "avi" {
		t.Errorf("expected container avi, got %q", cfg.Container)
	}
	// Untouched fields keep their defaults.
	if cfg.Subset != "train_copy" || cfg.Extension != "png" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Defaults() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "frame_rate: 25\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
