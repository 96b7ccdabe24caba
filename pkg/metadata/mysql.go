package metadata

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// Open opens the auxiliary MySQL connection used for catalog lookups. The
// DSN is validated up front so misconfiguration surfaces before the first
// query, and the pool is pinned to a single connection: the resolver
// serializes callers on it anyway.
func Open(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("metadata: parse dsn: %w", err)
	}
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("metadata: open aux connection: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
