package ports

import "go.lancet.dev/lancet/internal/core/domain"

// DecisionStore persists decision records between invocations.
// Records are diagnostic only and never consulted when making a decision.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DecisionStore interface {
	// Get retrieves the last record for a target.
	// Returns nil, nil if not found.
	Get(target string) (*domain.DecisionRecord, error)

	// Put stores the record.
	Put(rec domain.DecisionRecord) error
}
