package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Serve.Host != "0.0.0.0" || cfg.Serve.Port != "8000" {
		t.Fatalf("unexpected serve defaults: %+v", cfg.Serve)
	}
	if cfg.Upload.MaxPDFSizeMB != 10 {
		t.Fatalf("unexpected upload default: %d", cfg.Upload.MaxPDFSizeMB)
	}
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg.Serve.Port != "8000" {
		t.Fatalf("defaults lost on missing file: %+v", cfg)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "[serve]\nhost = \"127.0.0.1\"\nport = \"9090\"\n\n[upload]\nmax_pdf_size_mb = 5\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Serve.Host != "127.0.0.1" || cfg.Serve.Port != "9090" {
		t.Fatalf("file values not applied: %+v", cfg.Serve)
	}
	if cfg.Upload.MaxPDFSizeMB != 5 {
		t.Fatalf("file values not applied: %d", cfg.Upload.MaxPDFSizeMB)
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	t.Setenv("SERVE_HOST", "localhost")
	t.Setenv("SERVE_PORT", "8123")
	t.Setenv("MAX_UPLOAD_MB", "2")

	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Serve.Host != "localhost" || cfg.Serve.Port != "8123" {
		t.Fatalf("env not applied: %+v", cfg.Serve)
	}
	if cfg.Upload.MaxPDFSizeMB != 2 {
		t.Fatalf("env not applied: %d", cfg.Upload.MaxPDFSizeMB)
	}
}

func TestApplyEnv_IgnoresBadSize(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "zero")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Upload.MaxPDFSizeMB != 10 {
		t.Fatalf("bad env value should be ignored, got %d", cfg.Upload.MaxPDFSizeMB)
	}
}
