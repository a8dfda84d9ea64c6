// Package migrations holds the schema for every supported database driver,
// one directory per dialect.
package migrations

import "embed"

//go:embed mysql/*.sql postgres/*.sql sqlite/*.sql
var FS embed.FS
