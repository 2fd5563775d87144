package seed

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestImportImagesOverwritesExistingOnly(t *testing.T) {
	root := t.TempDir()
	imagesDir := filepath.Join(root, "images")
	require.NoError(t, os.MkdirAll(imagesDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(imagesDir, "logo.png"), []byte("old"), 0o644))

	zipPath := filepath.Join(root, "images.zip")
	writeZip(t, zipPath, map[string]string{
		"logo.png":  "new",
		"extra.png": "should be skipped",
	})

	require.NoError(t, importImages(zipPath, imagesDir))

	got, err := os.ReadFile(filepath.Join(imagesDir, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	_, err = os.Stat(filepath.Join(imagesDir, "extra.png"))
	assert.True(t, os.IsNotExist(err), "archive entries without an existing counterpart are skipped")
}

func TestImportImagesMissingZip(t *testing.T) {
	root := t.TempDir()
	err := importImages(filepath.Join(root, "nope.zip"), root)
	assert.Error(t, err)
}

func TestImportImagesMissingDir(t *testing.T) {
	root := t.TempDir()
	zipPath := filepath.Join(root, "images.zip")
	writeZip(t, zipPath, map[string]string{"a.png": "x"})

	err := importImages(zipPath, filepath.Join(root, "missing"))
	assert.Error(t, err)
}
