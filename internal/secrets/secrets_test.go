// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, GoogleFontsAPIKey, "  AIza-abc123  \n")
				writeFile(t, dir, "other-key", "xyz789")
				return dir
			},
			want: map[string]string{
				GoogleFontsAPIKey: "AIza-abc123",
				"other-key":       "xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty and whitespace-only files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, GoogleFontsAPIKey, "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{GoogleFontsAPIKey: "valid-key"},
		},
		{
			name: "skips dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, GoogleFontsAPIKey, "real")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{GoogleFontsAPIKey: "real"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), zap.NewNop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadNilLogger(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, GoogleFontsAPIKey, "k")

	got, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "k", got[GoogleFontsAPIKey])
}

func TestResolve(t *testing.T) {
	loaded := map[string]string{GoogleFontsAPIKey: "from-file"}

	assert.Equal(t, "from-flag", Resolve(loaded, GoogleFontsAPIKey, "from-flag"))
	assert.Equal(t, "from-file", Resolve(loaded, GoogleFontsAPIKey, ""))
	assert.Equal(t, "", Resolve(loaded, "missing", ""))
	assert.Equal(t, "", Resolve(nil, GoogleFontsAPIKey, ""))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
