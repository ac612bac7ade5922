package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-glossary/internal/logger"
)

//go:embed sql/*.sql
var files embed.FS

// Migrate applies every embedded migration in file name order.
// Each statement is idempotent, so Migrate is safe on an initialized database.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		query, err := files.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("run migration %s: %w", name, err)
		}
		logger.Log.Infow("migration applied", "name", name)
	}

	return nil
}
