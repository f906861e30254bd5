package domain

import "time"

// SourceFile is one candidate file discovered by the scanner, identified by
// its absolute, cleaned path. The content hash is computed lazily by the
// graph builder; files are rediscovered on every invocation and never
// persisted between runs.
type SourceFile struct {
	Path    string
	Ext     string
	ModTime time.Time
}
