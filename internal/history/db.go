package history

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the history schema definition.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the DDL used to initialize history databases.
func SchemaDDL() string {
	return schemaDDL
}

// Open opens (or creates) a DuckDB history database and ensures the
// schema is in place.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply history schema: %w", err)
	}
	return db, nil
}
