package migrations

import "embed"

// FS contains the embedded SQLite migrations for arena storage.
//
//go:embed *.sql
var FS embed.FS
