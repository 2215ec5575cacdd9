// Package migrations embeds the audit event schema migrations.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
