package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/adsappeal/adsappeal/internal/config"
)

// TestInitCmd tests creating a profile file.
func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".adsappeal")

	stdout, _, err := executeCommand(t, "init", "-o", path)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "Created profile file") {
		t.Errorf("output missing confirmation: %s", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("profile file not written: %v", err)
	}

	// The template must parse as a valid profile file.
	var f config.File
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("template is not valid profile YAML: %v", err)
	}
	for _, fragment := range []string{
		"legal_name:",
		"sector:",
		"tax_id:",
		"site_url:",
		"keywords:",
	} {
		if !strings.Contains(string(data), fragment) {
			t.Errorf("template missing field %q", fragment)
		}
	}
}

// TestInitCmdRefusesOverwrite tests the existing-file guard.
func TestInitCmdRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".adsappeal")
	if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	_, _, err := executeCommand(t, "init", "-o", path)
	if err == nil {
		t.Fatal("expected error for existing profile file")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v", err)
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		t.Fatalf("read profile: %v", readErr)
	}
	if string(data) != "existing" {
		t.Error("existing file was overwritten without -f")
	}
}

// TestInitCmdForceOverwrite tests the -f flag.
func TestInitCmdForceOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".adsappeal")
	if err := os.WriteFile(path, []byte("existing"), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, _, err := executeCommand(t, "init", "-o", path, "-f"); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if string(data) == "existing" {
		t.Error("file was not overwritten with -f")
	}
}

// TestInitCmdCreatesParentDirs tests nested output paths.
func TestInitCmdCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients", "acme", "profile.yaml")

	if _, _, err := executeCommand(t, "init", "-o", path); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("profile not created at nested path: %v", err)
	}
}
