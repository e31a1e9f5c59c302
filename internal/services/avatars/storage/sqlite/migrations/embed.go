package migrations

import "embed"

// FS contains embedded SQLite migrations for seed storage.
//
//go:embed *.sql
var FS embed.FS
