package ports

// SpecifierExtractor pulls raw import specifiers out of source text.
//
// The default implementation is pattern-based, not a parser: specifiers
// inside strings or comments can be falsely matched. That trade-off is part
// of the contract; this interface exists so a real parser could be swapped
// in without touching the graph or policy layers.
//
//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type SpecifierExtractor interface {
	// Extract returns every import specifier found in src, in document
	// order, duplicates included.
	Extract(src []byte) []string
}
