// Package vocab holds assets that are embedded into the binary, such as the
// SQL migrations for every supported database engine.
package vocab

import "embed"

// Migrations contains goose migrations, one directory per engine
// (migrations/postgres and migrations/sqlite).
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS
