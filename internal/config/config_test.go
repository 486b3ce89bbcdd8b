package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default MaxNumber is MaxInt64", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxNumber != math.MaxInt64 {
			t.Errorf("expected MaxNumber to be %d, got %d", int64(math.MaxInt64), cfg.MaxNumber)
		}
	})

	t.Run("default Format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.Format != FormatText {
			t.Errorf("expected Format to be %q, got %q", FormatText, cfg.Format)
		}
	})

	t.Run("default Debug is false", func(t *testing.T) {
		t.Parallel()
		if cfg.Debug {
			t.Error("expected Debug to be false")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		return &Config{
			Pairs:     1000,
			MaxNumber: 10000,
			Format:    FormatText,
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid config returns nil", modify: func(*Config) {}},
		{name: "eleven pairs is valid", modify: func(c *Config) { c.Pairs = 11 }},
		{name: "ten pairs returns ErrTooFewPairs", modify: func(c *Config) { c.Pairs = 10 }, wantErr: ErrTooFewPairs},
		{name: "five pairs returns ErrTooFewPairs", modify: func(c *Config) { c.Pairs = 5 }, wantErr: ErrTooFewPairs},
		{name: "negative pairs returns ErrTooFewPairs", modify: func(c *Config) { c.Pairs = -1 }, wantErr: ErrTooFewPairs},
		{name: "max number 10 returns ErrMaxNumberTooSmall", modify: func(c *Config) { c.MaxNumber = 10 }, wantErr: ErrMaxNumberTooSmall},
		{name: "max number 0 returns ErrMaxNumberTooSmall", modify: func(c *Config) { c.MaxNumber = 0 }, wantErr: ErrMaxNumberTooSmall},
		{name: "max number 11 is valid", modify: func(c *Config) { c.MaxNumber = 11 }},
		{name: "json format is valid", modify: func(c *Config) { c.Format = FormatJSON }},
		{name: "markdown format is valid", modify: func(c *Config) { c.Format = FormatMarkdown }},
		{name: "unknown format returns ErrInvalidFormat", modify: func(c *Config) { c.Format = "yaml" }, wantErr: ErrInvalidFormat},
		{
			name:    "pairs checked before max number",
			modify:  func(c *Config) { c.Pairs = 1; c.MaxNumber = 1 },
			wantErr: ErrTooFewPairs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"text", "json", "markdown"} {
		f, err := ParseFormat(s)
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", s, err)
		}
		if string(f) != s {
			t.Errorf("ParseFormat(%q) = %q", s, f)
		}
	}

	if _, err := ParseFormat("TEXT"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestConfigApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		if err := cfg.ApplyFile(nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxNumber != DefaultMaxNumber {
			t.Errorf("expected default MaxNumber, got %d", cfg.MaxNumber)
		}
	})

	t.Run("file values replace defaults", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		file := &File{MaxNumber: 5000, Debug: true, Format: "json"}

		if err := cfg.ApplyFile(file, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxNumber != 5000 {
			t.Errorf("expected MaxNumber 5000, got %d", cfg.MaxNumber)
		}
		if !cfg.Debug {
			t.Error("expected Debug to be true")
		}
		if cfg.Format != FormatJSON {
			t.Errorf("expected Format json, got %q", cfg.Format)
		}
	})

	t.Run("overridden flags win over file", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MaxNumber = 42
		cfg.Format = FormatMarkdown
		file := &File{MaxNumber: 5000, Format: "json"}

		err := cfg.ApplyFile(file, map[string]bool{"max-number": true, "format": true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxNumber != 42 {
			t.Errorf("expected MaxNumber 42, got %d", cfg.MaxNumber)
		}
		if cfg.Format != FormatMarkdown {
			t.Errorf("expected Format markdown, got %q", cfg.Format)
		}
	})

	t.Run("invalid format in file returns ErrInvalidFormat", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		err := cfg.ApplyFile(&File{Format: "html"}, nil)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})
}

// TestLoadConfigFile tests loading the YAML configuration file.
func TestLoadConfigFile(t *testing.T) {
	t.Run("loads valid config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, ".coprimepi")

		content := `maxNumber: 100000
debug: true
format: markdown
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cf, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.MaxNumber != 100000 {
			t.Errorf("expected maxNumber 100000, got %d", cf.MaxNumber)
		}
		if !cf.Debug {
			t.Error("expected debug true")
		}
		if cf.Format != "markdown" {
			t.Errorf("expected format markdown, got %q", cf.Format)
		}
	})

	t.Run("returns ErrConfigNotFound for missing file", func(t *testing.T) {
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, ".coprimepi")

		content := `invalid: yaml: content: [}`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfigFile(configPath)
		if err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "custom.yaml")

		if err := os.WriteFile(configPath, []byte("debug: false"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		result := FindConfigFile(configPath)
		if result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		result := FindConfigFile("/nonexistent/path/config.yaml")
		if result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("finds config in current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)
		if err := os.WriteFile(configPath, []byte("debug: true"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		t.Chdir(tmpDir)

		result := FindConfigFile("")
		if filepath.Base(result) != DefaultConfigFile {
			t.Errorf("expected to find %s, got %q", DefaultConfigFile, result)
		}
	})
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Error("expected non-empty XDG config dir")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected dir to end with %q, got %q", AppName, dir)
	}
}
