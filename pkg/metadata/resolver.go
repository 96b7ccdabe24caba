// Package metadata resolves the full declared type text of ENUM and SET
// columns from the server's schema catalog. Lookup failures are never fatal
// to the form: callers log them and fall back to plain text widgets.
package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Resolver fetches a column's full declared type text, e.g.
// "enum('new','open','closed')". An empty string with a nil error means the
// type text is unavailable and the caller should degrade gracefully.
type Resolver interface {
	FullColumnType(ctx context.Context, schema, table, column string) (string, error)
}

// ServerVersion is the connected server's version, used to gate catalog
// lookups on servers too old to answer them.
type ServerVersion struct {
	Major int
	Minor int
}

// AtLeast reports whether the version meets a minimum major.minor.
func (v ServerVersion) AtLeast(major, minor int) bool {
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// ParseServerVersion extracts major.minor from a server version string such
// as "5.7.42-log" or "8.0.36". Unparseable input yields the zero version,
// which fails every AtLeast check.
func ParseServerVersion(s string) ServerVersion {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 {
		return ServerVersion{}
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return ServerVersion{}
	}
	minor := parts[1]
	if idx := strings.IndexFunc(minor, func(r rune) bool { return r < '0' || r > '9' }); idx >= 0 {
		minor = minor[:idx]
	}
	minorNum, err := strconv.Atoi(minor)
	if err != nil {
		return ServerVersion{}
	}
	return ServerVersion{Major: major, Minor: minorNum}
}

const columnTypeQuery = `SELECT COLUMN_TYPE FROM INFORMATION_SCHEMA.COLUMNS WHERE table_schema = ? AND table_name = ? AND column_name = ?`

// SQLResolver resolves column types from INFORMATION_SCHEMA over a shared
// auxiliary connection. The catalog only carries full type text on 5.5+;
// older servers get an empty answer without a round-trip. Lookups hold a
// mutex so only one is in flight on the shared connection at a time.
type SQLResolver struct {
	mu      sync.Mutex
	db      *sql.DB
	version ServerVersion
}

// NewSQLResolver wraps the auxiliary connection and the server version it
// reported at connect time.
func NewSQLResolver(db *sql.DB, version ServerVersion) *SQLResolver {
	return &SQLResolver{db: db, version: version}
}

// FullColumnType queries the catalog for one column's declared type. A
// missing row resolves to "" without error.
func (r *SQLResolver) FullColumnType(ctx context.Context, schema, table, column string) (string, error) {
	if r == nil || r.db == nil {
		return "", nil
	}
	if !r.version.AtLeast(5, 5) {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var fullType string
	err := r.db.QueryRowContext(ctx, columnTypeQuery, schema, table, column).Scan(&fullType)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("metadata: column type lookup for %s.%s.%s: %w", schema, table, column, err)
	}
	return fullType, nil
}
