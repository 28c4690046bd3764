package migrations

import "embed"

// Files carries the schema migrations compiled into the binary, applied in
// version order at startup.
//
//go:embed *.sql
var Files embed.FS
