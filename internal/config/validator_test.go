package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator_File(t *testing.T) {
	tempDir := t.TempDir()
	readable := filepath.Join(tempDir, "readable.txt")
	require.NoError(t, os.WriteFile(readable, []byte("ok"), 0644))
	unreadable := filepath.Join(tempDir, "unreadable.txt")
	require.NoError(t, os.WriteFile(unreadable, []byte("ng"), 0200))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "empty path is allowed", path: "", wantErr: false},
		{name: "readable file", path: readable, wantErr: false},
		{name: "file without read permission", path: unreadable, wantErr: true},
		{name: "directory", path: tempDir, wantErr: true},
		{name: "missing file", path: filepath.Join(tempDir, "missing.txt"), wantErr: true},
	}

	validate, trans, err := newValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Output:   OutputConfig{Format: OutputFormatText},
				Analysis: AnalysisConfig{UserDictionary: tt.path},
			}
			err := validate.Struct(cfg)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			require.Len(t, validationErrors, 1)
			assert.Equal(t, "analysis.user_dictionary must be an existing and readable file", validationErrors[0].Translate(trans))
		})
	}
}
