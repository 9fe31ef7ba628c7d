package sqlconn

import "errors"

// ErrNotConnected is returned by every query-family operation on a
// closed Conn, before the driver is touched.
var ErrNotConnected = errors.New("not connected to a database")

// ConnectionError reports a failure to establish a session.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "Database connection error: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError reports a prepare, bind, execute or fetch failure.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return "Query Execution Error: " + e.Err.Error()
}

func (e *QueryError) Unwrap() error { return e.Err }
