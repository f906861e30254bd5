package domain

import (
	"sort"
	"time"
)

// Mode is the verification scope decided for a change.
type Mode string

const (
	// ModeFull means every file must be re-verified.
	ModeFull Mode = "FULL"
	// ModeNarrow means only the target and its blast radius need re-verification.
	ModeNarrow Mode = "NARROW"
)

// Decision is the output contract with the verification orchestrator.
// Files is empty for FULL decisions, meaning "check everything".
type Decision struct {
	Target     string              `json:"target"`
	Mode       Mode                `json:"mode"`
	Files      []string            `json:"files,omitempty"`
	Count      int                 `json:"count"`
	Reason     string              `json:"reason,omitempty"`
	Partitions map[string][]string `json:"partitions,omitempty"`
}

// NewFullDecision creates a FULL decision for the given target.
func NewFullDecision(target, reason string) *Decision {
	return &Decision{
		Target: target,
		Mode:   ModeFull,
		Reason: reason,
	}
}

// NewNarrowDecision creates a NARROW decision covering the target plus its
// blast radius. The file list is sorted and deduplicated.
func NewNarrowDecision(target string, radius []string) *Decision {
	seen := map[string]struct{}{target: {}}
	files := []string{target}
	for _, f := range radius {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		files = append(files, f)
	}
	sort.Strings(files)

	return &Decision{
		Target: target,
		Mode:   ModeNarrow,
		Files:  files,
		Count:  len(files),
	}
}

// DecisionRecord is the persisted trace of one decision, keyed by target.
// It is informational only; a decision is never replayed from a record.
type DecisionRecord struct {
	Target      string    `json:"target,omitzero"`
	Mode        Mode      `json:"mode,omitzero"`
	Count       int       `json:"count,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}
