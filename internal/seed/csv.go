package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pedroQM1/MrService/internal/credentials"
	"github.com/pedroQM1/MrService/internal/identity"
	"github.com/pedroQM1/MrService/internal/logger"
)

// requiredHeaders is the exact header set a users file must carry.
var requiredHeaders = []string{
	"email",
	"normalizedemail",
	"normalizedusername",
	"password",
	"phonenumber",
	"username",
}

// parseUsers reads the tabular user source. The header row must match
// requiredHeaders exactly; malformed data rows are logged and skipped.
func parseUsers(r io.Reader) ([]identity.User, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("seed: read header row: %w", err)
	}

	for i, h := range header {
		header[i] = normalizeHeader(h)
	}

	if err := validateHeaders(requiredHeaders, header); err != nil {
		return nil, err
	}

	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}

	var users []identity.User
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Error("skipping unreadable user row", map[string]any{
				"error": err.Error(),
			})
			continue
		}

		u, err := userFromRow(row, col)
		if err != nil {
			logger.Error("skipping invalid user row", map[string]any{
				"error": err.Error(),
			})
			continue
		}

		users = append(users, u)
	}

	return users, nil
}

func userFromRow(row []string, col map[string]int) (identity.User, error) {
	if len(row) != len(col) {
		return identity.User{}, fmt.Errorf(
			"seed: column count %d does not match header count %d", len(row), len(col))
	}

	field := func(name string) string {
		return strings.TrimSpace(row[col[name]])
	}

	email := field("email")
	userName := field("username")
	password := field("password")
	if email == "" || userName == "" || password == "" {
		return identity.User{}, errMissingField
	}

	hash, err := credentials.HashPassword(password)
	if err != nil {
		return identity.User{}, err
	}

	u := identity.NewUser(email, userName, field("phonenumber"), hash)
	if v := field("normalizedemail"); v != "" {
		u.NormalizedEmail = v
	}
	if v := field("normalizedusername"); v != "" {
		u.NormalizedUserName = v
	}

	return u, nil
}
