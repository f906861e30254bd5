package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress for the phases of a verification run.
type Telemetry interface {
	// Record starts recording a new vertex for a named phase.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for progress output attached to the vertex.
	Stdout() io.Writer

	// Cached marks the vertex as served from cache.
	Cached()

	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
}
