package graph

// Stats summarizes a graph for display alongside it.
type Stats struct {
	NodeCount   int     `json:"node_count"`
	EdgeCount   int     `json:"edge_count"`
	ShowCount   int     `json:"show_count"`
	WriterCount int     `json:"writer_count"`
	AvgDegree   float64 `json:"avg_degree"`
	MaxWeight   int     `json:"max_weight"`
}

// ComputeStats returns aggregate metrics for the graph. AvgDegree is the
// total number of edge endpoints divided by the node count, 0 for an empty
// graph. MaxWeight is floored at 0, so a graph holding only negative-weight
// edges reports 0.
func ComputeStats(g Graph) Stats {
	stats := Stats{
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
	}

	for _, node := range g.Nodes {
		switch node.Type {
		case NodeTypeShow:
			stats.ShowCount++
		case NodeTypeWriter:
			stats.WriterCount++
		}
	}

	if stats.NodeCount > 0 {
		stats.AvgDegree = float64(2*stats.EdgeCount) / float64(stats.NodeCount)
	}

	for _, edge := range g.Edges {
		if edge.Weight > stats.MaxWeight {
			stats.MaxWeight = edge.Weight
		}
	}

	return stats
}
