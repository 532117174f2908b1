// Package sharecart holds the assets embedded into the binary.
package sharecart

import "embed"

// Migrations contains the goose SQL migrations for the PostgreSQL schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
