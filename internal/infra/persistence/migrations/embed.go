// Package migrations embeds the goose SQL migrations for the users and member tables.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
