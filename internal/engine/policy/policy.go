// Package policy decides the verification scope for a changed file.
package policy

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.lancet.dev/lancet/internal/core/domain"
	"go.lancet.dev/lancet/internal/core/ports"
)

// Policy turns a blast radius into a FULL or NARROW verification decision.
//
// Every failure mode degrades to FULL: narrow checking is an acceleration,
// and missing a broken dependent is worse than re-checking everything.
type Policy struct {
	log ports.Logger
}

// NewPolicy creates a new Policy.
func NewPolicy(log ports.Logger) *Policy {
	return &Policy{log: log}
}

// Decide applies the scope rules for target. radiusErr carries a blast
// radius computation failure (for example the target file could not be
// read during the graph build); any non-nil value forces FULL.
func (p *Policy) Decide(cfg *domain.Config, target string, radius []string, radiusErr error) *domain.Decision {
	if radiusErr != nil {
		p.log.Warn(fmt.Sprintf("blast radius unavailable for %s, falling back to full verification: %v", target, radiusErr))
		return domain.NewFullDecision(target, "blast radius computation failed")
	}

	if pattern, ok := p.matchTrigger(cfg, target); ok {
		return domain.NewFullDecision(target, fmt.Sprintf("target matches global trigger %q", pattern))
	}

	if len(radius)+1 > cfg.Threshold {
		return domain.NewFullDecision(target,
			fmt.Sprintf("affected surface %d exceeds threshold %d", len(radius)+1, cfg.Threshold))
	}

	decision := domain.NewNarrowDecision(target, radius)
	decision.Partitions = p.partition(cfg, decision.Files)
	return decision
}

// matchTrigger reports whether the target's basename matches any
// always-global trigger, either literally or as a glob pattern.
func (p *Policy) matchTrigger(cfg *domain.Config, target string) (string, bool) {
	base := filepath.Base(target)
	for _, pattern := range cfg.GlobalTriggers {
		if pattern == base {
			return pattern, true
		}
		if matched, err := filepath.Match(pattern, base); err == nil && matched {
			return pattern, true
		}
	}
	return "", false
}

// partition groups the narrow file set by sub-project boundary: the first
// directory level under the containing scan root. Downstream tools with
// per-sub-project configuration check each partition separately.
func (p *Policy) partition(cfg *domain.Config, files []string) map[string][]string {
	parts := make(map[string][]string)
	for _, file := range files {
		parts[subProject(cfg, file)] = append(parts[subProject(cfg, file)], file)
	}
	for _, list := range parts {
		sort.Strings(list)
	}
	return parts
}

// subProject returns the partition key for a file: the containing root
// joined with the file's first path segment under it, or the root itself
// for files directly inside it. Files outside every root fall into "".
func subProject(cfg *domain.Config, file string) string {
	var bestRoot string
	for _, root := range cfg.Roots {
		if root == file || strings.HasPrefix(file, root+string(filepath.Separator)) {
			if len(root) > len(bestRoot) {
				bestRoot = root
			}
		}
	}
	if bestRoot == "" {
		return ""
	}

	rel, err := filepath.Rel(bestRoot, file)
	if err != nil {
		return bestRoot
	}
	segments := strings.Split(rel, string(filepath.Separator))
	if len(segments) < 2 {
		return bestRoot
	}
	return filepath.Join(bestRoot, segments[0])
}
