package mysql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bgunnarsson/sqlconn"
	"github.com/bgunnarsson/sqlconn/mysql"
)

func TestDialectFixedConfiguration(t *testing.T) {
	d := mysql.Dialect(sqlconn.Config{
		Host:     "db.example.com:3306",
		Database: "appdb",
		User:     "ada",
		Password: "s3cret",
	})

	assert.Equal(t, "mysql", d.Name)
	assert.Equal(t, "mysql", d.Driver)
	assert.Equal(t, "SELECT LAST_INSERT_ID()", d.LastInsert)

	assert.Contains(t, d.DSN, "ada:s3cret@tcp(db.example.com:3306)/appdb")
	assert.Contains(t, d.DSN, "charset=utf8mb4")
	assert.Contains(t, d.DSN, "parseTime=true")

	// server-side binding only: the driver must never interpolate
	// parameters into the SQL text client-side
	assert.NotContains(t, d.DSN, "interpolateParams")
}
