package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/pedroQM1/MrService/internal/db"
)

// PostgresStore is the canonical user store backed by the users table.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, user_name, normalized_email, normalized_user_name,
		       phone_number, password_hash, security_stamp, created_at
		FROM users
		WHERE LOWER(normalized_email) = LOWER($1)
	`, email).Scan(
		&u.ID,
		&u.Email,
		&u.UserName,
		&u.NormalizedEmail,
		&u.NormalizedUserName,
		&u.PhoneNumber,
		&u.PasswordHash,
		&u.SecurityStamp,
		&u.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("identity: find by email: %w", err)
	}

	return &u, nil
}

func (s *PostgresStore) Create(ctx context.Context, u User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (
			id, email, user_name, normalized_email, normalized_user_name,
			phone_number, password_hash, security_stamp
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		u.ID,
		u.Email,
		u.UserName,
		u.NormalizedEmail,
		u.NormalizedUserName,
		u.PhoneNumber,
		u.PasswordHash,
		u.SecurityStamp,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return ErrAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("identity: create user: %w", err)
	}

	return nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("identity: count users: %w", err)
	}
	return n, nil
}
