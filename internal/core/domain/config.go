package domain

import "time"

// Config carries every knob the engine needs for one verification run.
// Paths (roots, alias targets, state path) are absolute by the time a
// Config leaves the loader.
type Config struct {
	// Roots are the directories to scan for source files.
	Roots []string

	// ExcludeDirs are directory basenames whose whole subtree is skipped.
	ExcludeDirs map[string]struct{}

	// ExcludePrefixes skip any directory whose basename starts with one of
	// these (e.g. "." for hidden directories, "dist" for build output).
	ExcludePrefixes []string

	// Extensions are the source file extensions collected by the scanner,
	// in resolver probe order.
	Extensions []string

	// Aliases maps import-specifier prefixes to directories
	// (e.g. "@/" -> "<root>/src").
	Aliases map[string]string

	// GlobalTriggers are basenames or glob patterns whose modification
	// always forces FULL verification.
	GlobalTriggers []string

	// Threshold is the maximum NARROW file count (target plus blast
	// radius) before falling back to FULL.
	Threshold int

	// MaxFiles caps the scan as a safety net against misconfigured roots.
	MaxFiles int

	// GenericTTL is the cache lifetime for computed entries.
	GenericTTL time.Duration

	// FileTTL is the cache lifetime for file-content entries, shorter
	// because file content is more volatile.
	FileTTL time.Duration

	// StatePath, when set, is where decision records are snapshotted.
	StatePath string
}
