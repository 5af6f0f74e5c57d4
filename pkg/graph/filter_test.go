package graph

import (
	"reflect"
	"testing"
)

func testGraph() Graph {
	return Graph{
		Nodes: []Node{
			{ID: "show-10", Type: NodeTypeShow, Label: "Alpha"},
			{ID: "show-20", Type: NodeTypeShow, Label: "Beta"},
			{ID: "show-30", Type: NodeTypeShow, Label: "Gamma"},
			{ID: "show-40", Type: NodeTypeShow, Label: "Delta"},
		},
		Edges: []Edge{
			{Source: "show-10", Target: "show-20", Weight: 3},
			{Source: "show-10", Target: "show-30", Weight: 1},
			{Source: "show-20", Target: "show-30", Weight: 2},
		},
	}
}

func TestFilterConnected(t *testing.T) {
	got := FilterConnected(testGraph())

	if len(got.Nodes) != 3 {
		t.Errorf("node count = %d, want 3", len(got.Nodes))
	}
	for _, node := range got.Nodes {
		if node.ID == "show-40" {
			t.Errorf("disconnected node kept")
		}
	}
	if len(got.Edges) != 3 {
		t.Errorf("edge count = %d, want 3 (edges unchanged)", len(got.Edges))
	}
}

func TestFilterConnectedSelfLoop(t *testing.T) {
	g := Graph{
		Nodes: []Node{
			{ID: "show-10", Type: NodeTypeShow},
			{ID: "show-20", Type: NodeTypeShow},
		},
		Edges: []Edge{
			{Source: "show-10", Target: "show-10", Weight: 1},
		},
	}

	got := FilterConnected(g)
	if len(got.Nodes) != 1 || got.Nodes[0].ID != "show-10" {
		t.Errorf("self-loop node not kept: %+v", got.Nodes)
	}
}

func TestFilterConnectedIdempotent(t *testing.T) {
	once := FilterConnected(testGraph())
	twice := FilterConnected(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("FilterConnected not idempotent: %+v vs %+v", once, twice)
	}
}

func TestFilterByWeight(t *testing.T) {
	tests := []struct {
		name      string
		minWeight int
		wantEdges int
		wantNodes int
	}{
		{name: "threshold below all", minWeight: 0, wantEdges: 3, wantNodes: 3},
		{name: "threshold one", minWeight: 1, wantEdges: 3, wantNodes: 3},
		{name: "threshold two", minWeight: 2, wantEdges: 2, wantNodes: 3},
		{name: "threshold three", minWeight: 3, wantEdges: 1, wantNodes: 2},
		{name: "threshold above all", minWeight: 4, wantEdges: 0, wantNodes: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByWeight(testGraph(), tt.minWeight)
			if len(got.Edges) != tt.wantEdges {
				t.Errorf("edge count = %d, want %d", len(got.Edges), tt.wantEdges)
			}
			if len(got.Nodes) != tt.wantNodes {
				t.Errorf("node count = %d, want %d", len(got.Nodes), tt.wantNodes)
			}
		})
	}
}

func TestFilterByWeightMonotonic(t *testing.T) {
	g := testGraph()
	prevEdges := len(g.Edges) + 1
	for minWeight := 0; minWeight <= 5; minWeight++ {
		got := FilterByWeight(g, minWeight)
		if len(got.Edges) > prevEdges {
			t.Errorf("edge count grew from %d to %d at minWeight %d", prevEdges, len(got.Edges), minWeight)
		}
		if len(got.Nodes) > len(g.Nodes) || len(got.Edges) > len(g.Edges) {
			t.Errorf("filtering increased counts at minWeight %d", minWeight)
		}
		prevEdges = len(got.Edges)
	}
}

func TestFilterByWeightIdempotent(t *testing.T) {
	once := FilterByWeight(testGraph(), 2)
	twice := FilterByWeight(once, 2)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("FilterByWeight not idempotent: %+v vs %+v", once, twice)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	g := testGraph()
	want := testGraph()

	FilterConnected(g)
	FilterByWeight(g, 2)

	if !reflect.DeepEqual(g, want) {
		t.Errorf("input graph mutated: %+v", g)
	}
}
