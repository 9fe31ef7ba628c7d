// Package postgres opens sqlconn connections against PostgreSQL via
// the pgx stdlib driver.
package postgres

import (
	"net/url"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx stdlib driver

	"github.com/bgunnarsson/sqlconn"
)

// Dialect builds the PostgreSQL dialect for cfg. Credentials are
// URL-escaped; the session encoding is fixed to UTF8.
//
// lastval() errors until the session has used a sequence, so
// LastInsertID before any insert surfaces a query error rather than
// an empty identifier on this engine.
func Dialect(cfg sqlconn.Config) sqlconn.Dialect {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host,
		Path:     "/" + cfg.Database,
		RawQuery: "client_encoding=UTF8",
	}

	return sqlconn.Dialect{
		Name:       "postgres",
		Driver:     "pgx",
		DSN:        u.String(),
		LastInsert: "SELECT lastval()::text",
	}
}

// Open connects to the PostgreSQL server described by cfg.
func Open(cfg sqlconn.Config) (*sqlconn.Conn, error) {
	return sqlconn.Open(Dialect(cfg), cfg)
}
