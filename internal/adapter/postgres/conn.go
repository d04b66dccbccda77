package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/movieloader/internal/config"
)

// DefaultDatabase is used when neither the caller, the config nor the DSN names a database.
const DefaultDatabase = "university"

// DB is the connection surface the repositories need.
// Implemented by *pgx.Conn and by pgxmock connections in tests.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Open connects a single PostgreSQL connection and pings it.
//
// The target database is, in order of precedence: dbName, cfg.Name, the
// database in cfg.DSN, DefaultDatabase. Connection failures are returned
// as-is (wrapped); there is no retry.
func Open(ctx context.Context, cfg config.DatabaseConfig, dbName string) (*pgx.Conn, error) {
	connCfg, err := connConfig(cfg, dbName)
	if err != nil {
		return nil, err
	}

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database %q: %w", connCfg.Database, err)
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("ping database %q: %w", connCfg.Database, err)
	}

	return conn, nil
}

// Close releases the connection opened by Open.
func Close(ctx context.Context, conn *pgx.Conn) error {
	if conn == nil {
		return nil
	}
	if err := conn.Close(ctx); err != nil {
		return fmt.Errorf("close database connection: %w", err)
	}
	return nil
}

func connConfig(cfg config.DatabaseConfig, dbName string) (*pgx.ConnConfig, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	switch {
	case dbName != "":
		connCfg.Database = dbName
	case cfg.Name != "":
		connCfg.Database = cfg.Name
	case connCfg.Database == "":
		connCfg.Database = DefaultDatabase
	}

	if cfg.ConnectTimeout > 0 {
		connCfg.ConnectTimeout = cfg.ConnectTimeout
	}

	return connCfg, nil
}
