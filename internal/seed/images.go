package seed

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pedroQM1/MrService/internal/logger"
)

// importImages overwrites files under imagesDir with same-named entries
// from the archive. Entries that have no existing counterpart are
// skipped so the archive can never introduce new files.
func importImages(zipPath, imagesDir string) error {
	if _, err := os.Stat(zipPath); err != nil {
		return fmt.Errorf("zip file %q does not exist", zipPath)
	}

	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return fmt.Errorf("read images dir %q: %w", imagesDir, err)
	}

	existing := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			existing[e.Name()] = true
		}
	}

	archive, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open zip %q: %w", zipPath, err)
	}
	defer archive.Close()

	for _, entry := range archive.File {
		name := filepath.Base(entry.Name)

		if !existing[name] {
			logger.Warn("skipped file in images archive", map[string]any{
				"file": name,
				"zip":  zipPath,
			})
			continue
		}

		src, err := entry.Open()
		if err != nil {
			logger.Error("failed to open archive entry", map[string]any{
				"file":  name,
				"error": err.Error(),
			})
			continue
		}

		dst := filepath.Join(imagesDir, name)
		if err := copyFile(dst, src); err != nil {
			logger.Error("failed to extract archive entry", map[string]any{
				"file":  name,
				"error": err.Error(),
			})
		}
		src.Close()
	}

	return nil
}
