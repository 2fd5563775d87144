package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pedroQM1/MrService/internal/config"
	"github.com/pedroQM1/MrService/internal/credentials"
	"github.com/pedroQM1/MrService/internal/identity"
	"github.com/pedroQM1/MrService/internal/logger"
)

const (
	// maxAttempts bounds the retry loop; once exhausted the failure is
	// absorbed and the service starts with an unseeded store.
	maxAttempts = 10

	defaultUserEmail    = "demouser@microsoft.com"
	defaultUserPassword = "Pass@word1"
	defaultUserPhone    = "1234567890"
)

// Seeder populates the user store once at startup, before the HTTP
// server accepts requests. Seeding never duplicates or overwrites
// existing identities.
type Seeder struct {
	store identity.Store
	cfg   *config.Config
}

func New(store identity.Store, cfg *config.Config) *Seeder {
	return &Seeder{store: store, cfg: cfg}
}

// Seed runs the bounded retry loop. Attempts retry immediately, each
// failure is logged, and exhausting the ceiling is not an error to the
// caller.
func (s *Seeder) Seed(ctx context.Context) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := s.attempt(ctx)
		if err == nil {
			return
		}

		logger.Error("seed attempt failed", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
	}

	logger.Error("seeding gave up after retry ceiling", map[string]any{
		"attempts": maxAttempts,
	})
}

func (s *Seeder) attempt(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}

	if count == 0 {
		users := s.defaultUsers()
		if s.cfg.UseCustomizationData {
			users = s.usersFromFile()
		}

		for _, u := range users {
			if err := s.store.Create(ctx, u); err != nil {
				return err
			}
		}
	}

	if s.cfg.UseCustomizationData {
		// best-effort; asset problems never block startup
		s.importPreconfiguredImages()
	}

	return nil
}

// defaultUsers is the built-in fallback identity used whenever no
// usable customization source exists.
func (s *Seeder) defaultUsers() []identity.User {
	hash, err := credentials.HashPassword(defaultUserPassword)
	if err != nil {
		logger.Error("failed to hash default user password", map[string]any{
			"error": err.Error(),
		})
		return nil
	}

	return []identity.User{
		identity.NewUser(defaultUserEmail, defaultUserEmail, defaultUserPhone, hash),
	}
}

// usersFromFile loads identities from Setup/Users.csv under the content
// root. Any source-level problem (missing file, bad header) falls back
// to the default identity; row-level problems skip the row only.
func (s *Seeder) usersFromFile() []identity.User {
	path := filepath.Join(s.cfg.ContentRootPath, "Setup", "Users.csv")

	f, err := os.Open(path)
	if err != nil {
		logger.Warn("users file not found, using default user", map[string]any{
			"path": path,
		})
		return s.defaultUsers()
	}
	defer f.Close()

	users, err := parseUsers(f)
	if err != nil {
		logger.Error("users file rejected, using default user", map[string]any{
			"path":  path,
			"error": err.Error(),
		})
		return s.defaultUsers()
	}

	return users
}

// importPreconfiguredImages copies entries of Setup/images.zip over
// files of the same name under <webroot>/images. Entries without an
// existing counterpart are skipped; every failure is logged only.
func (s *Seeder) importPreconfiguredImages() {
	zipPath := filepath.Join(s.cfg.ContentRootPath, "Setup", "images.zip")
	imagesDir := filepath.Join(s.cfg.WebRootPath, "images")

	if err := importImages(zipPath, imagesDir); err != nil {
		logger.Error("image import failed", map[string]any{
			"zip":   zipPath,
			"error": err.Error(),
		})
	}
}

func copyFile(dst string, src io.Reader) error {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// normalizeHeader lower-cases and trims one header cell.
func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// validateHeaders requires got to match required exactly: same count,
// same membership, case-insensitively.
func validateHeaders(required, got []string) error {
	if len(got) != len(required) {
		return fmt.Errorf("seed: required header count %d differs from read header count %d",
			len(required), len(got))
	}

	for _, want := range required {
		found := false
		for _, h := range got {
			if h == want {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("seed: missing required header %q", want)
		}
	}

	return nil
}

var errMissingField = errors.New("seed: row is missing a required value")
