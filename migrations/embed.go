// Package migrations holds the SQL schema files applied by cmd/tools/migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
