package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnsureConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	created, err := EnsureConfigExists(configPath)
	if err != nil {
		t.Fatalf("EnsureConfigExists failed: %v", err)
	}
	if !created {
		t.Error("expected the config to be reported as created")
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read created config: %v", err)
	}

	contentStr := string(content)
	expectedStrings := []string{
		"delay: 2s",
		"interval: 50ms",
		"submit_key: enter",
		"backend: auto",
		"log_level:",
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(contentStr, expected) {
			t.Errorf("config missing expected content: %q", expected)
		}
	}
}

func TestEnsureConfigExistsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if _, err := EnsureConfigExists(configPath); err != nil {
		t.Fatalf("first call failed: %v", err)
	}

	customContent := []byte("# custom config\ndelay: 5s")
	if err := os.WriteFile(configPath, customContent, 0644); err != nil {
		t.Fatalf("failed to write custom content: %v", err)
	}

	created, err := EnsureConfigExists(configPath)
	if err != nil {
		t.Fatalf("second call should not error: %v", err)
	}
	if created {
		t.Error("second call should not report creation")
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if string(content) != string(customContent) {
		t.Error("EnsureConfigExists overwrote existing config")
	}
}
