package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pdrpinto/pathfinder"
	"github.com/pdrpinto/pathfinder/grid"
	"github.com/pdrpinto/pathfinder/internal/must"
	"github.com/pdrpinto/pathfinder/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

type batchOutput struct {
	Requests int     `json:"requests"`
	Found    int     `json:"found"`
	NoPath   int     `json:"noPath"`
	Expanded int     `json:"expanded"`
	Cost     float64 `json:"cost"`
	Elapsed  string  `json:"elapsed"`
}

var (
	batchCount   *int
	batchSeed    *int64
	batchWorkers *int
	batchTimeout *time.Duration
	batchMetrics *bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run concurrent path searches between random open cells",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		if *batchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, *batchTimeout)
			defer cancel()
		}
		runBatch(ctx, cmd.OutOrStdout())
	},
}

// runBatch runs the batch searches until ctx is done and writes the summary to w.
func runBatch(ctx context.Context, w io.Writer) {
	g, m := loadMap()
	requests := randomRequests(g, *batchCount, *batchSeed)

	registry := prometheus.NewRegistry()
	recorder := must.Must1(metrics.NewRecorder(registry))
	options := []pathfinder.Option{pathfinder.WithRecorder(recorder)}
	if *batchWorkers > 0 {
		options = append(options, pathfinder.WithWorkers(*batchWorkers))
	}
	began := time.Now()
	responses, err := pathfinder.FindPaths(ctx, g, m, requests, options...)
	if err != nil {
		log.Error(err, "Batch interrupted")
	}
	out := batchOutput{Requests: len(requests), Elapsed: time.Since(began).String()}
	for _, r := range responses {
		switch {
		case r.Result.Found:
			out.Found++
			out.Cost += r.Result.TotalCost
		case errors.Is(r.Err, pathfinder.ErrNoPath):
			out.NoPath++
		}
		out.Expanded += r.Result.ExpandedNodes
	}
	emit(w, out)

	if *batchMetrics {
		families := must.Must1(registry.Gather())
		for _, mf := range families {
			_, err := expfmt.MetricFamilyToText(w, mf)
			must.Must(err)
		}
	}
}

// randomRequests picks count start/goal pairs among the open cells of g.
func randomRequests(g *grid.Grid, count int, seed int64) []pathfinder.PathRequest[grid.NodeID] {
	var open []grid.NodeID
	for _, n := range g.Nodes() {
		if g.Type(n) == grid.Open {
			open = append(open, n)
		}
	}
	if len(open) == 0 {
		panic(fmt.Errorf("map has no open cells"))
	}
	r := rand.New(rand.NewSource(seed))
	requests := make([]pathfinder.PathRequest[grid.NodeID], count)
	for i := range requests {
		requests[i] = pathfinder.PathRequest[grid.NodeID]{
			Start:  open[r.Intn(len(open))],
			Target: open[r.Intn(len(open))],
		}
	}
	return requests
}

func init() {
	batchCount = batchCmd.Flags().IntP("count", "n", 100, "Number of searches")
	batchSeed = batchCmd.Flags().Int64("seed", 1, "Random seed for start and goal cells")
	batchWorkers = batchCmd.Flags().IntP("workers", "w", 0, "Concurrent searches, 0 means one per CPU")
	batchTimeout = batchCmd.Flags().Duration("timeout", 0, "Stop starting new searches after this long")
	batchMetrics = batchCmd.Flags().Bool("metrics", false, "Print search metrics in Prometheus text format")
	rootCmd.AddCommand(batchCmd)
}
