package sqlconn

import (
	"database/sql"
	"strings"
)

// Row maps column names to values for one fetched row.
type Row map[string]any

// Resultset carries the fetched rows together with the column names
// in server order, which the maps alone cannot preserve.
type Resultset struct {
	Columns []string
	Rows    []Row
}

// ReturnsRows reports whether query is a row-returning statement, for
// callers deciding between Select and Exec on arbitrary SQL text.
func ReturnsRows(query string) bool {
	head := strings.ToLower(strings.TrimSpace(query))
	for _, kw := range []string{"select", "with", "show", "pragma", "explain", "describe", "values"} {
		if strings.HasPrefix(head, kw) {
			return true
		}
	}
	return false
}

// collect drains rows into a Resultset. Cells are scanned into any;
// []byte cells are converted to string since several drivers return
// TEXT/VARCHAR as byte slices.
func collect(rows *sql.Rows) (*Resultset, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	rs := &Resultset{Columns: cols}

	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, name := range cols {
			if b, ok := values[i].([]byte); ok {
				row[name] = string(b)
				continue
			}
			row[name] = values[i]
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rs, nil
}
