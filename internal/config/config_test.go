package config

import (
	"testing"
)

func TestLoad_CustomEnvironment(t *testing.T) {
	t.Setenv("LEDCOMMANDER_ENV", "production")
	t.Setenv("LEDCOMMANDER_LAYOUT", "./layout.yaml")
	t.Setenv("LEDCOMMANDER_STRICT", "true")
	t.Setenv("LEDCOMMANDER_EXPORT_INDENT", "false")

	cfg := Load()

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be 'production', got '%s'", cfg.Env)
	}
	if cfg.IsDevelopment() {
		t.Error("Expected IsDevelopment() to be false")
	}
	if cfg.LayoutPath != "./layout.yaml" {
		t.Errorf("Expected LayoutPath to be './layout.yaml', got '%s'", cfg.LayoutPath)
	}
	if !cfg.Strict {
		t.Error("Expected Strict to be true")
	}
	if cfg.ExportIndent {
		t.Error("Expected ExportIndent to be false")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("LEDCOMMANDER_STRICT", "not-a-bool")

	cfg := Load()

	if cfg.Strict {
		t.Error("Expected invalid bool to fall back to default false")
	}
}
