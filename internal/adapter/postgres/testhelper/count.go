package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
)

// CountRows returns SELECT count(*) for table.
func CountRows(t *testing.T, conn *pgx.Conn, table string) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + pgx.Identifier{table}.Sanitize()
	if err := conn.QueryRow(context.Background(), query).Scan(&n); err != nil {
		t.Fatalf("testhelper: count %s: %v", table, err)
	}
	return n
}

// TableExists reports whether a table with the given name exists in the public schema.
func TableExists(t *testing.T, conn *pgx.Conn, table string) bool {
	t.Helper()

	var exists bool
	err := conn.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = $1)`,
		table,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("testhelper: table exists %s: %v", table, err)
	}
	return exists
}
