package migrations

import (
	"embed"
	"io/fs"
)

// goose reads migrations from the root of the FS so the files stay flat.
//
//go:embed *.sql
var embedMigrations embed.FS

func GetMigrations() embed.FS {
	return embedMigrations
}

// Names lists the migration files in the order they are applied.
func Names() ([]string, error) {
	return fs.Glob(embedMigrations, "*.sql")
}
