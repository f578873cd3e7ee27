package main

import (
	"bytes"
	"strings"
	"testing"
)

// executeCommand runs the root command with the given arguments and
// returns captured stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// TestRootCmdHelp tests the top-level help output.
func TestRootCmdHelp(t *testing.T) {
	stdout, _, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	for _, fragment := range []string{
		"adsappeal",
		"analyze",
		"generate",
		"init",
		"version",
		"--verbose",
	} {
		if !strings.Contains(stdout, fragment) {
			t.Errorf("help output missing %q", fragment)
		}
	}
}

// TestRootCmdUnknownCommand tests the error for an unknown subcommand.
func TestRootCmdUnknownCommand(t *testing.T) {
	_, _, err := executeCommand(t, "bogus")
	if err == nil {
		t.Fatal("expected error for unknown subcommand")
	}
}

// TestRootCmdSubcommands tests that every expected subcommand is wired.
func TestRootCmdSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	expected := map[string]bool{
		"analyze":  false,
		"generate": false,
		"init":     false,
		"version":  false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := expected[sub.Name()]; ok {
			expected[sub.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
