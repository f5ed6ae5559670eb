package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/swatches/internal/archive"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvSpace, EnvFormat, EnvLogLevel, EnvPreviewWidth} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_space: rgb\ndefault_format: base64\nlog_level: debug\npreview_width: 10\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Config{DefaultSpace: "rgb", DefaultFormat: archive.FormatBase64, LogLevel: "debug", PreviewWidth: 10}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("file config mismatch (-want +got):\n%s", diff)
	}

	t.Setenv(EnvSpace, "LAB")
	t.Setenv(EnvFormat, "bytes")
	t.Setenv(EnvPreviewWidth, "3")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want = Config{DefaultSpace: "lab", DefaultFormat: archive.FormatBytes, LogLevel: "debug", PreviewWidth: 3}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("env override mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "bad yaml", content: "default_space: [unterminated"},
		{name: "bad format", content: "default_format: blob"},
		{name: "bad log level", content: "log_level: loud"},
		{name: "bad preview width", content: "preview_width: 0"},
		{name: "bad env width", env: map[string]string{EnvPreviewWidth: "wide"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error")
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultPath(); got != filepath.Join("/tmp/xdg", "swatches", "config.yaml") {
		t.Errorf("DefaultPath() = %s", got)
	}
	t.Setenv(EnvConfigPath, "/etc/swatches.yaml")
	if got := DefaultPath(); got != "/etc/swatches.yaml" {
		t.Errorf("DefaultPath() = %s, want env override", got)
	}
}
