// Package sqlconn wraps database/sql with an eagerly-connected,
// exclusively-owned connection handle. A Conn is built from four
// connection parameters, runs prepared statements with server-side
// parameter binding, and surfaces every failure as an error value.
package sqlconn

import (
	"context"
	"database/sql"
	"time"
)

// Config holds the connection parameters, stored verbatim.
type Config struct {
	Host     string
	Database string
	User     string
	Password string // sensitive, never logged
}

// Dialect describes one supported engine. The dialect packages
// (mysql, postgres, mssql, sqlite) construct these from a Config.
type Dialect struct {
	Name       string // engine label, e.g. "mysql"
	Driver     string // database/sql driver name
	DSN        string // full data source name
	LastInsert string // session-scoped identity query, empty if unsupported
	Setup      string // optional statement run right after connect
}

// Conn owns a single database session. A nil inner handle means the
// Conn is disconnected; Close is the only way to get there and there
// is no way back (open a new Conn instead).
type Conn struct {
	cfg     Config
	dialect Dialect
	db      *sql.DB
	lastErr error
}

const connectTimeout = 5 * time.Second

// Open connects eagerly and verifies the session with a ping.
// The pool is pinned to one connection: the session is exclusively
// owned, never shared, and session-scoped queries like LAST_INSERT_ID
// see the caller's own statements.
func Open(d Dialect, cfg Config) (*Conn, error) {
	sqldb, err := sql.Open(d.Driver, d.DSN)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), connectTimeout)
	defer cancelPing()

	if err := sqldb.PingContext(pingCtx); err != nil {
		sqldb.Close()
		return nil, &ConnectionError{Err: err}
	}

	if d.Setup != "" {
		// fresh deadline: a slow connect must not eat the setup budget
		setupCtx, cancelSetup := context.WithTimeout(context.Background(), connectTimeout)
		defer cancelSetup()

		if _, err := sqldb.ExecContext(setupCtx, d.Setup); err != nil {
			sqldb.Close()
			return nil, &ConnectionError{Err: err}
		}
	}

	return &Conn{cfg: cfg, dialect: d, db: sqldb}, nil
}

// Dialect returns the dialect this Conn was opened with.
func (c *Conn) Dialect() Dialect { return c.dialect }

// handle is the single guard between callers and the driver: every
// query-family operation goes through it, so a disconnected Conn
// never reaches the driver.
func (c *Conn) handle() (*sql.DB, error) {
	if c.db == nil {
		c.lastErr = ErrNotConnected
		return nil, ErrNotConnected
	}
	return c.db, nil
}

// fail records err in the last-error mirror and returns it wrapped.
func (c *Conn) fail(query string, err error) error {
	qe := &QueryError{Query: query, Err: err}
	c.lastErr = qe
	return qe
}

// Prepare compiles query server-side and returns a reusable handle.
func (c *Conn) Prepare(ctx context.Context, query string) (*Stmt, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}

	st, err := db.PrepareContext(ctx, query)
	if err != nil {
		return nil, c.fail(query, err)
	}

	return &Stmt{st: st, conn: c, query: query}, nil
}

// Select runs query with the given positional parameters and fetches
// every row as a column-name→value mapping, in server order.
func (c *Conn) Select(ctx context.Context, query string, args ...any) ([]Row, error) {
	rs, err := c.SelectSet(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rs.Rows, nil
}

// SelectSet is Select with the ordered column header attached, for
// callers that need to render rows in column order.
func (c *Conn) SelectSet(ctx context.Context, query string, args ...any) (*Resultset, error) {
	st, err := c.Prepare(ctx, query)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	rows, err := st.Query(ctx, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rs, err := collect(rows)
	if err != nil {
		return nil, c.fail(query, err)
	}
	return rs, nil
}

// Exec runs a mutating statement and returns the affected-row count.
func (c *Conn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	st, err := c.Prepare(ctx, query)
	if err != nil {
		return 0, err
	}
	defer st.Close()

	res, err := st.Exec(ctx, args...)
	if err != nil {
		return 0, err
	}
	if res == nil {
		return 0, nil
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, c.fail(query, err)
	}
	return n, nil
}

// LastInsertID returns the most recent auto-generated key on this
// session as an opaque string, or "" when the session has produced
// none yet. The value shape is engine-defined, hence the string.
func (c *Conn) LastInsertID(ctx context.Context) (string, error) {
	db, err := c.handle()
	if err != nil {
		return "", err
	}
	if c.dialect.LastInsert == "" {
		return "", nil
	}

	var id sql.NullString
	if err := db.QueryRowContext(ctx, c.dialect.LastInsert).Scan(&id); err != nil {
		return "", c.fail(c.dialect.LastInsert, err)
	}
	if !id.Valid || id.String == "0" {
		return "", nil
	}
	return id.String, nil
}

// Connected reports whether the Conn currently holds a session.
func (c *Conn) Connected() bool { return c.db != nil }

// LastError returns the most recent recorded failure, or nil if none
// has occurred. It is a diagnostic mirror of the returned errors; it
// is never cleared by later successes, only overwritten by later
// failures.
func (c *Conn) LastError() error { return c.lastErr }

// Close releases the session. Safe to call more than once.
func (c *Conn) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}
