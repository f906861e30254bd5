// Package domain contains the core domain models for the import dependency graph.
package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// ForwardGraph maps a source file to the set of files it imports.
// Every scanned file is a node, even when it imports nothing.
type ForwardGraph struct {
	edges map[InternedString]map[InternedString]struct{}
}

// NewForwardGraph creates a new empty ForwardGraph.
func NewForwardGraph() *ForwardGraph {
	return &ForwardGraph{
		edges: make(map[InternedString]map[InternedString]struct{}),
	}
}

// AddNode ensures a node exists for the given path, with an empty edge set
// if it had none. A file with zero resolvable imports is still addressable.
func (g *ForwardGraph) AddNode(path string) {
	p := NewInternedString(path)
	if _, ok := g.edges[p]; !ok {
		g.edges[p] = make(map[InternedString]struct{})
	}
}

// AddEdge records that importer imports imported. Both endpoints become
// nodes. Duplicate edges are collapsed.
func (g *ForwardGraph) AddEdge(importer, imported string) {
	from := NewInternedString(importer)
	to := NewInternedString(imported)
	if _, ok := g.edges[from]; !ok {
		g.edges[from] = make(map[InternedString]struct{})
	}
	if _, ok := g.edges[to]; !ok {
		g.edges[to] = make(map[InternedString]struct{})
	}
	g.edges[from][to] = struct{}{}
}

// Contains reports whether path is a node in the graph.
func (g *ForwardGraph) Contains(path string) bool {
	_, ok := g.edges[NewInternedString(path)]
	return ok
}

// Len returns the number of nodes.
func (g *ForwardGraph) Len() int {
	return len(g.edges)
}

// Imports returns the sorted list of files that path imports.
func (g *ForwardGraph) Imports(path string) []string {
	return sortedKeys(g.edges[NewInternedString(path)])
}

// Nodes returns the sorted list of all node paths.
func (g *ForwardGraph) Nodes() []string {
	nodes := make([]string, 0, len(g.edges))
	for p := range g.edges {
		nodes = append(nodes, p.String())
	}
	sort.Strings(nodes)
	return nodes
}

// Fingerprint returns a stable hash of the graph's nodes and edges.
// Two graphs built from the same file set hash identically regardless of
// map iteration order.
func (g *ForwardGraph) Fingerprint() string {
	h := xxhash.New()
	for _, node := range g.Nodes() {
		_, _ = h.WriteString(node)
		_, _ = h.Write([]byte{0})
		for _, imported := range g.Imports(node) {
			_, _ = h.WriteString(imported)
			_, _ = h.Write([]byte{1})
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// Invert builds the dependents index: for every edge A -> B in the forward
// graph, the reverse graph gains B -> A. Every forward node is carried over
// as a reverse node, so a file with zero dependents still has an entry.
func (g *ForwardGraph) Invert() *ReverseGraph {
	r := &ReverseGraph{
		dependents: make(map[InternedString]map[InternedString]struct{}, len(g.edges)),
	}
	for node := range g.edges {
		if _, ok := r.dependents[node]; !ok {
			r.dependents[node] = make(map[InternedString]struct{})
		}
		for imported := range g.edges[node] {
			if _, ok := r.dependents[imported]; !ok {
				r.dependents[imported] = make(map[InternedString]struct{})
			}
			r.dependents[imported][node] = struct{}{}
		}
	}
	return r
}

// ReverseGraph maps a source file to the set of files that import it.
type ReverseGraph struct {
	dependents map[InternedString]map[InternedString]struct{}
}

// Contains reports whether path is a node in the reverse graph.
func (r *ReverseGraph) Contains(path string) bool {
	_, ok := r.dependents[NewInternedString(path)]
	return ok
}

// Len returns the number of nodes.
func (r *ReverseGraph) Len() int {
	return len(r.dependents)
}

// Dependents returns the sorted list of files that directly import path.
func (r *ReverseGraph) Dependents(path string) []string {
	return sortedKeys(r.dependents[NewInternedString(path)])
}

// BlastRadius returns every file that transitively depends on target,
// excluding target itself. The traversal is breadth-first; the visited set
// is seeded with the target so import cycles terminate.
func (r *ReverseGraph) BlastRadius(target string) []string {
	start := NewInternedString(target)
	visited := map[InternedString]struct{}{start: {}}
	frontier := []InternedString{start}

	var radius []string
	for len(frontier) > 0 {
		current := frontier[0]
		frontier = frontier[1:]

		for dep := range r.dependents[current] {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			radius = append(radius, dep.String())
			frontier = append(frontier, dep)
		}
	}

	sort.Strings(radius)
	return radius
}

func sortedKeys(set map[InternedString]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return keys
}
