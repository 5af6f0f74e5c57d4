package main

import (
	"os"

	"writergraph/internal/util"
	"writergraph/pkg/enrich"
	"writergraph/pkg/graph"
	"writergraph/pkg/logger"
	"writergraph/pkg/logger/console"
	"writergraph/pkg/overlap"
	"writergraph/pkg/snapshot"
)

func main() {
	util.LoadEnv()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	path := util.GetEnvString("SNAPSHOT_PATH", "data/snapshot.json")
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	file, err := os.Open(path)
	if err != nil {
		logger.Fatal("Could not open snapshot", "path", path, "err", err)
	}
	defer file.Close()

	snap, err := snapshot.Decode(file)
	if err != nil {
		logger.Fatal("Could not decode snapshot", "path", path, "err", err)
	}
	logger.Info("Snapshot loaded",
		"shows", len(snap.Shows),
		"writers", len(snap.Writers),
		"credits", len(snap.Credits),
	)

	enrichedShows := enrich.Shows(snap.Shows, snap.Writers, snap.Credits)
	enrichedWriters := enrich.Writers(snap.Writers, snap.Shows, snap.Credits)

	summaries := overlap.MultiShowWriters(enrichedWriters)
	logger.Info("Multi-show writers", "count", len(summaries))
	for _, summary := range summaries {
		logger.Debug("Writer overlap",
			"writer", summary.Writer.Name,
			"shows", summary.ShowCount,
		)
	}

	matrix := overlap.Matrix(enrichedShows)
	for i, show := range enrichedShows {
		logger.Debug("Matrix row", "show", show.Title, "row", matrix[i])
	}

	bipartite := graph.BuildBipartite(snap.Shows, snap.Writers, snap.Credits)
	logStats("Bipartite graph", graph.ComputeStats(bipartite))

	overlapGraph := graph.BuildOverlap(snap.Shows, snap.Writers, snap.Credits)
	logStats("Overlap graph", graph.ComputeStats(overlapGraph))

	minShared := util.GetEnvInt("MIN_SHARED", 2)
	filtered := graph.FilterByWeight(overlapGraph, minShared)
	logStats("Filtered overlap graph", graph.ComputeStats(filtered))
}

func logStats(name string, stats graph.Stats) {
	logger.Info(name,
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"shows", stats.ShowCount,
		"writers", stats.WriterCount,
		"avg_degree", stats.AvgDegree,
		"max_weight", stats.MaxWeight,
	)
}
