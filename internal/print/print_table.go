package print

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bgunnarsson/sqlconn"
)

type Options struct {
	MaxWidth int // max width for each column, 0 = no limit
}

// RenderTable writes rs as a bordered plain-text table. Column order
// follows rs.Columns; cell values are looked up in the row mappings.
func RenderTable(w io.Writer, rs *sqlconn.Resultset, opts Options) {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = 40
	}

	cols := len(rs.Columns)
	if cols == 0 {
		fmt.Fprintln(w, "(no columns)")
		return
	}

	// compute widths
	widths := make([]int, cols)
	for i, name := range rs.Columns {
		widths[i] = len(name)
	}

	for _, row := range rs.Rows {
		for i, name := range rs.Columns {
			s := FormatCell(row[name])
			if l := len(s); l > widths[i] {
				if l > opts.MaxWidth {
					l = opts.MaxWidth
				}
				widths[i] = l
			}
		}
	}

	// helpers
	sep := func(ch string) string {
		var b strings.Builder
		b.WriteString("+")
		for i := range widths {
			b.WriteString(strings.Repeat(ch, widths[i]+2))
			b.WriteString("+")
		}
		return b.String()
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		b.WriteString("|")
		for i, c := range cells {
			cut := truncate(c, widths[i])
			b.WriteString(" ")
			b.WriteString(padRight(cut, widths[i]))
			b.WriteString(" |")
		}
		fmt.Fprintln(w, b.String())
	}

	// header
	fmt.Fprintln(w, sep("-"))
	writeRow(rs.Columns)
	fmt.Fprintln(w, sep("="))

	// data
	for _, row := range rs.Rows {
		cells := make([]string, cols)
		for i, name := range rs.Columns {
			cells[i] = FormatCell(row[name])
		}
		writeRow(cells)
	}
	fmt.Fprintln(w, sep("-"))
}

// FormatCell renders one cell value for display.
func FormatCell(v any) string {
	if v == nil {
		return "NULL"
	}
	switch t := v.(type) {
	case []byte:
		// heuristic: treat as string if printable, else show len
		s := string(t)
		if isPrintable(s) {
			return s
		}
		return fmt.Sprintf("<blob %d bytes>", len(t))
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(t)
	}
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r < 32 && r != '\n' && r != '\t' {
			return false
		}
	}
	return true
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncate(s string, w int) string {
	if len(s) <= w {
		return s
	}
	if w <= 1 {
		return s[:w]
	}
	if w == 2 {
		return s[:2]
	}
	return s[:w-3] + "..."
}
