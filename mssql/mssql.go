// Package mssql opens sqlconn connections against SQL Server.
package mssql

import (
	"net/url"
	"strings"

	"github.com/microsoft/go-mssqldb/azuread"

	_ "github.com/microsoft/go-mssqldb" // register sqlserver driver

	"github.com/bgunnarsson/sqlconn"
)

// Dialect builds the SQL Server dialect for cfg. The host may carry
// extra options after a '?' (e.g. "srv.database.windows.net?fedauth=ActiveDirectoryDefault");
// when fedauth is present the Azure AD driver is used so managed
// identities and interactive logins work.
func Dialect(cfg sqlconn.Config) sqlconn.Dialect {
	host := cfg.Host
	extra := ""
	if i := strings.Index(host, "?"); i != -1 {
		host, extra = host[:i], host[i+1:]
	}

	query := url.Values{}
	query.Set("database", cfg.Database)
	if extra != "" {
		if v, err := url.ParseQuery(extra); err == nil {
			for k := range v {
				query.Set(k, v.Get(k))
			}
		}
	}

	u := url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     host,
		RawQuery: query.Encode(),
	}

	driver := "sqlserver"
	if query.Get("fedauth") != "" {
		driver = azuread.DriverName
	}

	return sqlconn.Dialect{
		Name:       "mssql",
		Driver:     driver,
		DSN:        u.String(),
		LastInsert: "SELECT CAST(SCOPE_IDENTITY() AS BIGINT)",
	}
}

// Open connects to the SQL Server described by cfg.
func Open(cfg sqlconn.Config) (*sqlconn.Conn, error) {
	return sqlconn.Open(Dialect(cfg), cfg)
}
