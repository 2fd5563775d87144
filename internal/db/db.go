package db

import "database/sql"

// DB wraps the raw sql handle so stores depend on a package type
// instead of database/sql directly.
type DB struct {
	*sql.DB
}
