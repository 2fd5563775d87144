package db

import (
	"context"
	"database/sql"
)

const identityMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY,
    email text NOT NULL,
    user_name text NOT NULL,
    normalized_email text NOT NULL,
    normalized_user_name text NOT NULL,
    phone_number text NOT NULL DEFAULT '',
    password_hash text NOT NULL,
    security_stamp text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_normalized_email_unique
ON users (LOWER(normalized_email));

CREATE UNIQUE INDEX IF NOT EXISTS users_normalized_user_name_unique
ON users (LOWER(normalized_user_name));
`

// RunIdentityMigration creates the user schema if it does not exist.
// It is idempotent and safe to run on every startup.
func RunIdentityMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, identityMigration)
	return err
}
