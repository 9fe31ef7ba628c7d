package app

import (
	"context"
	"fmt"

	"github.com/bgunnarsson/sqlconn"
	"github.com/bgunnarsson/sqlconn/internal/ui"
	"github.com/bgunnarsson/sqlconn/mssql"
	"github.com/bgunnarsson/sqlconn/mysql"
	"github.com/bgunnarsson/sqlconn/postgres"
	"github.com/bgunnarsson/sqlconn/sqlite"
)

type Engine string

const (
	EngineSqlite   Engine = "sqlite"
	EnginePostgres Engine = "postgres"
	EngineMssql    Engine = "mssql"
	EngineMysql    Engine = "mysql"
)

// central factory
func openConn(engine Engine, cfg sqlconn.Config) (*sqlconn.Conn, error) {
	switch engine {
	case "", EngineSqlite:
		return sqlite.Open(cfg)
	case EnginePostgres:
		return postgres.Open(cfg)
	case EngineMssql:
		return mssql.Open(cfg)
	case EngineMysql:
		return mysql.Open(cfg)
	default:
		return nil, fmt.Errorf("unsupported engine %q", engine)
	}
}

func RunInteractive(ctx context.Context, engine Engine, cfg sqlconn.Config) error {
	conn, err := openConn(engine, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	// prompt/header label comes from the dialect the Conn was opened with
	return ui.Run(ctx, conn)
}
