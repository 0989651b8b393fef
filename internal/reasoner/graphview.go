package reasoner

import (
	"fmt"

	"github.com/dominikbraun/graph"
)

// ConceptGraph is a read-only structural view of memory: one vertex per
// concept name, one directed edge per term link from a concept to the
// concept its link targets. It exists purely for inspection (e.g.
// rendering or traversal by an outer shell); inference never consults it.
type ConceptGraph struct {
	g graph.Graph[string, string]
}

// BuildConceptGraph walks every concept in r's memory and its term links,
// building a graph.Graph snapshot of the current structural connections.
func (r *Reasoner) BuildConceptGraph() (*ConceptGraph, error) {
	g := graph.New(graph.StringHash, graph.Directed())

	for _, c := range r.memory.Concepts() {
		if err := g.AddVertex(c.Name()); err != nil && err != graph.ErrVertexAlreadyExists {
			return nil, fmt.Errorf("reasoner: add vertex %s: %w", c.Name(), err)
		}
	}
	for _, c := range r.memory.Concepts() {
		for _, tpl := range c.Templates() {
			target := tpl.Target.Key()
			if _, err := g.Vertex(target); err != nil {
				continue // target isn't (yet) its own concept; skip the edge
			}
			if err := g.AddEdge(c.Name(), target); err != nil && err != graph.ErrEdgeAlreadyExists {
				return nil, fmt.Errorf("reasoner: add edge %s->%s: %w", c.Name(), target, err)
			}
		}
	}
	return &ConceptGraph{g: g}, nil
}

// Order reports how many concepts the graph snapshot holds.
func (cg *ConceptGraph) Order() (int, error) { return cg.g.Order() }

// Neighbors returns the concept names directly reachable from name via a
// term link.
func (cg *ConceptGraph) Neighbors(name string) ([]string, error) {
	adjacency, err := cg.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("reasoner: adjacency map: %w", err)
	}
	edges, ok := adjacency[name]
	if !ok {
		return nil, nil
	}
	out := make([]string, 0, len(edges))
	for target := range edges {
		out = append(out, target)
	}
	return out, nil
}
