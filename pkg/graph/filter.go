package graph

// FilterConnected returns a graph keeping only the nodes that appear as the
// source or target of at least one edge. Edges pass through unchanged, and a
// node whose only edge is a self-loop counts as connected. Applying the
// filter twice yields the same graph as applying it once.
func FilterConnected(g Graph) Graph {
	connected := make(map[string]bool, len(g.Nodes))
	for _, edge := range g.Edges {
		connected[edge.Source] = true
		connected[edge.Target] = true
	}

	nodes := make([]Node, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		if connected[node.ID] {
			nodes = append(nodes, node)
		}
	}

	edges := make([]Edge, len(g.Edges))
	copy(edges, g.Edges)

	return Graph{Nodes: nodes, Edges: edges}
}

// FilterByWeight drops every edge whose weight is strictly below minWeight,
// then drops the nodes left without edges. Neither node nor edge count can
// grow, and repeated filtering at the same threshold is a no-op after the
// first pass.
func FilterByWeight(g Graph, minWeight int) Graph {
	edges := make([]Edge, 0, len(g.Edges))
	for _, edge := range g.Edges {
		if edge.Weight >= minWeight {
			edges = append(edges, edge)
		}
	}

	return FilterConnected(Graph{Nodes: g.Nodes, Edges: edges})
}
