// Package mysql opens sqlconn connections against MySQL/MariaDB.
package mysql

import (
	drv "github.com/go-sql-driver/mysql"

	"github.com/bgunnarsson/sqlconn"
)

// Dialect builds the MySQL dialect for cfg. The connection is fixed to
// utf8mb4 and server-side parameter binding (InterpolateParams stays
// false, so placeholders are bound by the server, never spliced into
// the SQL text client-side).
func Dialect(cfg sqlconn.Config) sqlconn.Dialect {
	mc := drv.NewConfig()
	mc.Net = "tcp"
	mc.Addr = cfg.Host
	mc.DBName = cfg.Database
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}

	return sqlconn.Dialect{
		Name:       "mysql",
		Driver:     "mysql",
		DSN:        mc.FormatDSN(),
		LastInsert: "SELECT LAST_INSERT_ID()",
	}
}

// Open connects to the MySQL server described by cfg.
func Open(cfg sqlconn.Config) (*sqlconn.Conn, error) {
	return sqlconn.Open(Dialect(cfg), cfg)
}
