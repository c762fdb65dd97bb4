package postgres

import (
	"errors"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports registram o driver postgres e a fonte de arquivos do golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate aplica as migrações SQL de db/migrations na subida da aplicação.
func Migrate(databaseURL string) error {
	m, err := migrate.New("file://db/migrations", databaseURL)
	if err != nil {
		return fmt.Errorf("abrir migrações: %w", err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migrações: %w", err)
	}
	return nil
}
