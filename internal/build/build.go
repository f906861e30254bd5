// Package build holds build-time metadata.
package build

// Version is the application version, overridable at link time via
// -ldflags "-X go.lancet.dev/lancet/internal/build.Version=...".
var Version = "dev"
