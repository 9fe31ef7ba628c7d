// Package sqlite opens sqlconn connections against a local SQLite
// file. Config.Database is the file path; Host is unused.
package sqlite

import (
	_ "modernc.org/sqlite" // register driver

	"github.com/bgunnarsson/sqlconn"
)

// Dialect builds the SQLite dialect for cfg. Foreign keys are enabled
// explicitly right after connect.
func Dialect(cfg sqlconn.Config) sqlconn.Dialect {
	return sqlconn.Dialect{
		Name:       "sqlite",
		Driver:     "sqlite",
		DSN:        cfg.Database,
		LastInsert: "SELECT last_insert_rowid()",
		Setup:      "PRAGMA foreign_keys = ON;",
	}
}

// Open opens the SQLite database file named by cfg.Database,
// creating it if missing.
func Open(cfg sqlconn.Config) (*sqlconn.Conn, error) {
	return sqlconn.Open(Dialect(cfg), cfg)
}
