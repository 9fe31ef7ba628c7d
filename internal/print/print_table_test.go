package print

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bgunnarsson/sqlconn"
)

func TestRenderTable(t *testing.T) {
	rs := &sqlconn.Resultset{
		Columns: []string{"id", "name"},
		Rows: []sqlconn.Row{
			{"id": int64(1), "name": "Ada"},
			{"id": int64(2), "name": nil},
		},
	}

	var buf bytes.Buffer
	RenderTable(&buf, rs, Options{})

	want := "" +
		"+----+------+\n" +
		"| id | name |\n" +
		"+====+======+\n" +
		"| 1  | Ada  |\n" +
		"| 2  | NULL |\n" +
		"+----+------+\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderTableNoColumns(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, &sqlconn.Resultset{}, Options{})
	assert.Equal(t, "(no columns)\n", buf.String())
}

func TestRenderTableTruncatesWideCells(t *testing.T) {
	rs := &sqlconn.Resultset{
		Columns: []string{"v"},
		Rows:    []sqlconn.Row{{"v": "abcdefghij"}},
	}

	var buf bytes.Buffer
	RenderTable(&buf, rs, Options{MaxWidth: 6})

	assert.Contains(t, buf.String(), "abc...")
	assert.NotContains(t, buf.String(), "abcdefghij")
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "NULL", FormatCell(nil))
	assert.Equal(t, "42", FormatCell(int64(42)))
	assert.Equal(t, "3.5", FormatCell(3.5))
	assert.Equal(t, "hello", FormatCell([]byte("hello")))
	assert.Equal(t, "<blob 2 bytes>", FormatCell([]byte{0x00, 0x01}))
}
