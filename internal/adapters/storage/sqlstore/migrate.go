// Package sqlstore implementa los repositorios sobre database/sql. Las
// consultas usan placeholders $N, que aceptan tanto pgx como modernc sqlite;
// cada driver aporta su propio schema.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate ejecuta los statements de schema en orden. Todos deben ser
// idempotentes (CREATE ... IF NOT EXISTS).
func Migrate(ctx context.Context, db *sql.DB, statements []string) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i+1, err)
		}
	}
	return nil
}

// UniqueViolation detecta violaciones de UNIQUE según el driver.
type UniqueViolation func(error) bool
