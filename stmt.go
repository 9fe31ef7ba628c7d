package sqlconn

import (
	"context"
	"database/sql"
)

// Stmt is a server-side prepared statement bound to its Conn.
// Failures are recorded in the Conn's last-error mirror.
type Stmt struct {
	st    *sql.Stmt
	conn  *Conn
	query string
}

// Query binds args positionally and executes, returning the raw row
// iterator. The caller owns rows and must Close them.
func (s *Stmt) Query(ctx context.Context, args ...any) (*sql.Rows, error) {
	rows, err := s.st.QueryContext(ctx, args...)
	if err != nil {
		return nil, s.conn.fail(s.query, err)
	}
	return rows, nil
}

// Exec binds args positionally and executes a mutating statement.
func (s *Stmt) Exec(ctx context.Context, args ...any) (sql.Result, error) {
	res, err := s.st.ExecContext(ctx, args...)
	if err != nil {
		return nil, s.conn.fail(s.query, err)
	}
	return res, nil
}

// Close releases the prepared statement.
func (s *Stmt) Close() error { return s.st.Close() }
