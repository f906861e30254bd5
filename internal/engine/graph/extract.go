// Package graph builds the forward import graph for a scanned file set.
package graph

import (
	"regexp"

	"go.lancet.dev/lancet/internal/core/ports"
)

// Import specifiers are pulled out with two independent patterns rather
// than a parser: one for static import/export statements, one for dynamic
// import()/require() calls. This trades perfect accuracy (a specifier
// inside a template string or comment can be falsely matched) for speed
// and zero parser dependency.
var (
	staticImportPattern  = regexp.MustCompile(`(?:import|export)\s+(?:[\w${},*\s]+from\s+)?["']([^"']+)["']`)
	dynamicImportPattern = regexp.MustCompile(`(?:import|require)\s*\(\s*["']([^"']+)["']\s*\)`)
)

var _ ports.SpecifierExtractor = (*RegexExtractor)(nil)

// RegexExtractor is the pattern-based ports.SpecifierExtractor.
type RegexExtractor struct{}

// NewRegexExtractor creates a new RegexExtractor.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

// Extract returns every specifier matched by either pattern, in document
// order per pattern, duplicates included. Downstream deduplicates.
func (e *RegexExtractor) Extract(src []byte) []string {
	var specs []string
	for _, m := range staticImportPattern.FindAllSubmatch(src, -1) {
		specs = append(specs, string(m[1]))
	}
	for _, m := range dynamicImportPattern.FindAllSubmatch(src, -1) {
		specs = append(specs, string(m[1]))
	}
	return specs
}
