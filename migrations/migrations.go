// Package migrations embeds the goose SQL migrations and the optional
// sample data used by cmd/migrate and the integration tests.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

//go:embed seed/sample_data.sql
var SampleData string
