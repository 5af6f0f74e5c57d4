package graph

import (
	"writergraph/pkg/common"
	"writergraph/pkg/enrich"
	"writergraph/pkg/overlap"
)

// defaultEdgeWeight is used for credits without an episode count.
const defaultEdgeWeight = 1

// BuildBipartite constructs the show/writer bipartite graph: one typed node
// per show and per writer, one edge per credit directed from the writer node
// to the show node, weighted by the credit's episode count (1 when absent).
//
// Credits referencing an unknown show or writer id still produce edges; the
// node set stays untouched. Callers that want the tighter graph can drop
// such edges against the node id set before filtering.
func BuildBipartite(shows []common.Show, writers []common.Writer, credits []common.Credit) Graph {
	nodes := make([]Node, 0, len(shows)+len(writers))
	for _, show := range shows {
		nodes = append(nodes, Node{
			ID:    NodeID(NodeTypeShow, show.ID),
			Type:  NodeTypeShow,
			Label: show.Title,
		})
	}
	for _, writer := range writers {
		nodes = append(nodes, Node{
			ID:    NodeID(NodeTypeWriter, writer.ID),
			Type:  NodeTypeWriter,
			Label: writer.Name,
		})
	}

	edges := make([]Edge, 0, len(credits))
	for _, credit := range credits {
		weight := credit.EpisodeCount
		if weight <= 0 {
			weight = defaultEdgeWeight
		}
		edges = append(edges, Edge{
			Source: NodeID(NodeTypeWriter, credit.WriterID),
			Target: NodeID(NodeTypeShow, credit.ShowID),
			Weight: weight,
		})
	}

	return Graph{Nodes: nodes, Edges: edges}
}

// BuildOverlap constructs the show-to-show overlap graph: one node per show
// and one edge per unordered pair of shows sharing at least one writer,
// weighted by the pairwise shared-writer count. No self-edges.
func BuildOverlap(shows []common.Show, writers []common.Writer, credits []common.Credit) Graph {
	nodes := make([]Node, 0, len(shows))
	for _, show := range shows {
		nodes = append(nodes, Node{
			ID:    NodeID(NodeTypeShow, show.ID),
			Type:  NodeTypeShow,
			Label: show.Title,
		})
	}

	enriched := enrich.Shows(shows, writers, credits)

	var edges []Edge
	for i := range enriched {
		for j := i + 1; j < len(enriched); j++ {
			shared := overlap.CountShared(enriched[i], enriched[j])
			if shared == 0 {
				continue
			}
			edges = append(edges, Edge{
				Source: NodeID(NodeTypeShow, enriched[i].ID),
				Target: NodeID(NodeTypeShow, enriched[j].ID),
				Weight: shared,
			})
		}
	}

	return Graph{Nodes: nodes, Edges: edges}
}
