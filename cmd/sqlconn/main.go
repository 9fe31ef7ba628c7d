package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/bgunnarsson/sqlconn"
	"github.com/bgunnarsson/sqlconn/internal/app"
)

func main() {
	var (
		engine string
		host   string
		dbName string
		user   string
		pass   string
		query  string
	)

	flag.StringVar(&engine, "driver", "sqlite", "database engine: sqlite, mysql, postgres, mssql")
	flag.StringVar(&host, "host", "", "database host (host:port); unused for sqlite")
	flag.StringVar(&dbName, "db", "", "database name, or file path for sqlite")
	flag.StringVar(&user, "user", "", "database user")
	flag.StringVar(&pass, "pass", "", "database password")
	flag.StringVar(&query, "q", "", "SQL statement to run in non-interactive mode")
	flag.Parse()

	// sqlite convenience: bare positional argument is the file path
	if dbName == "" && flag.NArg() > 0 {
		dbName = flag.Arg(0)
	}
	if dbName == "" {
		fmt.Fprintln(os.Stderr, "usage: sqlconn [-driver name] [-host h] [-user u] [-pass p] [-q query] -db <name|path>")
		os.Exit(1)
	}

	cfg := sqlconn.Config{
		Host:     host,
		Database: dbName,
		User:     user,
		Password: pass,
	}

	ctx := context.Background()

	stdoutIsTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if query != "" || !stdoutIsTTY {
		if err := app.RunNonInteractive(ctx, app.Engine(engine), cfg, query); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	if err := app.RunInteractive(ctx, app.Engine(engine), cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
