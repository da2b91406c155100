// Package migration aplica el esquema de la base al arrancar. Las migraciones
// van embebidas en el binario: un despliegue nuevo queda usable sin pasos
// manuales contra la base.
package migration

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

// Run aplica todas las migraciones pendientes. Sin cambios no es error.
func Run(databaseURL string) error {
	sub, err := fs.Sub(embeddedMigrations, "sql")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbURL, err := pgxURL(databaseURL)
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() { _, _ = migrator.Close() }()

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// pgxURL fuerza el esquema pgx5:// que registra el driver de migrate para pgx v5.
func pgxURL(databaseURL string) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", fmt.Errorf("parse database URL: %w", err)
	}
	u.Scheme = "pgx5"
	return u.String(), nil
}
