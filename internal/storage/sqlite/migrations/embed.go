package migrations

import "embed"

// FS contains embedded SQLite migrations for character and item storage.
//
//go:embed *.sql
var FS embed.FS
