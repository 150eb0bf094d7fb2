package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica, en orden de nombre, los scripts de migrations/. Los scripts son idempotentes.
func Migrate(ctx context.Context, q Querier) error {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(files)
	for _, f := range files {
		script, err := migrationsFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("leer %s: %w", f, err)
		}
		if _, err := q.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("aplicar %s: %w", f, err)
		}
	}
	return nil
}
