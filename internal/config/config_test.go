package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.DefaultDir != "" {
		t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Style != "" {
		t.Errorf("Style = %q, want empty", cfg.Style)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0", cfg.Workers)
	}
	if cfg.Strict {
		t.Error("Strict = true, want false")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "default is valid",
			mutate: func(*Config) {},
		},
		{
			name: "title at limit is valid",
			mutate: func(c *Config) {
				c.Document.Title = strings.Repeat("t", MaxTitleLength)
			},
		},
		{
			name: "title over limit",
			mutate: func(c *Config) {
				c.Document.Title = strings.Repeat("t", MaxTitleLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "description over limit",
			mutate: func(c *Config) {
				c.Document.Description = strings.Repeat("d", MaxDescriptionLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
		{
			name: "style over limit",
			mutate: func(c *Config) {
				c.Style = strings.Repeat("s", MaxStyleLength+1)
			},
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_WorkersRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		workers int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{MaxWorkers, false},
		{-1, true},
		{MaxWorkers + 1, true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Workers = tt.workers

		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate() with workers=%d error = %v, wantErr %v", tt.workers, err, tt.wantErr)
		}
	}
}

func TestLoadConfig_FromPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "docforge.yaml")
	content := `
input:
  defaultDir: docs
output:
  defaultDir: out
style: compact
document:
  title: Quarterly Report
workers: 4
strictInline: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Input.DefaultDir != "docs" {
		t.Errorf("Input.DefaultDir = %q, want docs", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "out" {
		t.Errorf("Output.DefaultDir = %q, want out", cfg.Output.DefaultDir)
	}
	if cfg.Style != "compact" {
		t.Errorf("Style = %q, want compact", cfg.Style)
	}
	if cfg.Document.Title != "Quarterly Report" {
		t.Errorf("Document.Title = %q, want Quarterly Report", cfg.Document.Title)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_EmptyName(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("error = %v, want ErrEmptyConfigName", err)
	}
}

func TestLoadConfig_ParseError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte(":\nnot yaml: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "typo.yaml")
	if err := os.WriteFile(path, []byte("stlye: compact\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse for unknown key", err)
	}
}

func TestLoadConfig_InvalidField(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(path, []byte("workers: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() with invalid workers succeeded, want error")
	}
}
