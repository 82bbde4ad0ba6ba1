// Package migrations embeds the goose SQL migrations for the data service.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
