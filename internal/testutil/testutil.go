// Package testutil provides shared test helpers for creating config files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig writes content as a config file in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(tmpDir, 0755))
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

// SetupTestUserDictionary writes a kagome user dictionary in tmpDir and returns its path.
// Each entry is a line of "surface,segmentation,reading,part of speech".
func SetupTestUserDictionary(t *testing.T, tmpDir string, entries ...string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(tmpDir, 0755))
	path := filepath.Join(tmpDir, "userdict.txt")
	var content []byte
	for _, entry := range entries {
		content = append(content, []byte(entry+"\n")...)
	}
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}
