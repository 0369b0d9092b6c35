package main

import (
	"bytes"
	"testing"

	"github.com/at-ishikawa/katsuyo/internal/reading"
	"github.com/at-ishikawa/katsuyo/internal/testutil"
)

func setupTestConfig(t *testing.T, content string) string {
	t.Helper()
	return testutil.SetupTestConfig(t, t.TempDir(), content)
}

// executeCommand runs the root command with args and returns what it printed to stdout
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

// replaceResolver swaps the resolver factory for the duration of a test
func replaceResolver(t *testing.T, resolver reading.Resolver) {
	t.Helper()

	original := newResolver
	newResolver = func(string) (reading.Resolver, error) {
		return resolver, nil
	}
	t.Cleanup(func() {
		newResolver = original
	})
}
