// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, GroqAPIKey), []byte("gsk_test123\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ImageAPIKey), []byte("  img_key  "), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty-key"), []byte("  \n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o700))

	secrets, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "gsk_test123", secrets[GroqAPIKey])
	assert.Equal(t, "img_key", secrets[ImageAPIKey])
	assert.NotContains(t, secrets, ".gitignore")
	assert.NotContains(t, secrets, "empty-key")
	assert.NotContains(t, secrets, "subdir")
}

func TestLoadMissingDir(t *testing.T) {
	secrets, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Empty(t, secrets)
}
