// Package migrations embeds the goose migrations of the sample application.
package migrations

import "embed"

// Dir is the directory of FS holding the migrations.
const Dir = "."

//go:embed *.sql
var FS embed.FS
