// Package migrations contiene el esquema versionado con goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
