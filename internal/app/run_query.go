package app

import (
	"context"
	"fmt"
	"os"

	"github.com/bgunnarsson/sqlconn"
	"github.com/bgunnarsson/sqlconn/internal/print"
)

// listTables is the default statement when no query is given.
var listTables = map[Engine]string{
	EngineSqlite:   "select name from sqlite_master where type = 'table' order by name;",
	EnginePostgres: "select table_name from information_schema.tables where table_schema = 'public' order by table_name;",
	EngineMysql:    "select table_name from information_schema.tables where table_schema = database() order by table_name;",
	EngineMssql:    "select table_name from information_schema.tables order by table_name;",
}

func RunNonInteractive(ctx context.Context, engine Engine, cfg sqlconn.Config, query string) error {
	if query == "" {
		// default behaviour: list tables
		q, ok := listTables[engine]
		if !ok {
			q = listTables[EngineSqlite]
		}
		query = q
	}

	conn, err := openConn(engine, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if !sqlconn.ReturnsRows(query) {
		n, err := conn.Exec(ctx, query)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%d row(s) affected\n", n)
		return nil
	}

	rs, err := conn.SelectSet(ctx, query)
	if err != nil {
		return err
	}

	print.RenderTable(os.Stdout, rs, print.Options{MaxWidth: 60})
	return nil
}
