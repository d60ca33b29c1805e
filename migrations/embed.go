// Package migrations - SQL-схема журнала вызовов в формате goose.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
