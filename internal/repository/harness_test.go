package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"github.com/aiphotoquote-dotcom/aiphotoquote/gen/ent"
)

// newTestClient opens an in-memory SQLite-backed Ent client with the schema
// migrated. Claim is exercised against Postgres separately (it depends on
// FOR UPDATE SKIP LOCKED); everything else in this package is plain Ent and
// behaves the same on both engines.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// keep the shared in-memory db alive for the whole test
	db.SetMaxIdleConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("migrate schema: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
