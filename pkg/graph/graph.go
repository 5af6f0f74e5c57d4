// Package graph derives renderable graph structures from shows, writers and
// credits: a show/writer bipartite graph and a show-to-show overlap graph,
// plus the connectivity and weight filters and aggregate statistics the
// presentation layer consumes.
package graph

// Node type constants. Node ids are derived from these via NodeID.
const (
	NodeTypeShow   = "show"
	NodeTypeWriter = "writer"
)

// Node is a single graph node. Type is NodeTypeShow or NodeTypeWriter and
// Label is the show title or writer name.
type Node struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// Edge connects a source node to a target node with an integer weight: the
// credit's episode count in the bipartite graph, the shared-writer count in
// the overlap graph.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Graph is an immutable node/edge collection. Transformations return new
// graphs; they never modify their input.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
