package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pdrpinto/pathfinder"
	"github.com/pdrpinto/pathfinder/grid"
	"github.com/pdrpinto/pathfinder/internal/must"
	"github.com/pdrpinto/pathfinder/internal/oracle"
	"github.com/spf13/cobra"
)

type pathOutput struct {
	Path     []grid.Coord `json:"path"`
	Cost     float64      `json:"cost"`
	Expanded int          `json:"expanded"`
	Optimal  *float64     `json:"optimal,omitempty"`
}

var verifyFlag *bool

var pathCmd = &cobra.Command{
	Use:   "path START GOAL",
	Short: "Find the cheapest path from START to GOAL, given as X,Y",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		g, m := loadMap()
		start, goal := node(g, args[0]), node(g, args[1])
		result := must.Must1(pathfinder.FindPath(g, m, start, goal))
		out := pathOutput{Path: coords(g, result.Path), Cost: result.TotalCost, Expanded: result.ExpandedNodes}
		if *verifyFlag {
			optimal := oracle.New(g, m, start).Cost(goal)
			out.Optimal = &optimal
			if result.TotalCost > optimal+1e-9 {
				log.Info("Path is costlier than optimal, the heuristic overestimates", "cost", result.TotalCost, "optimal", optimal)
			}
		}
		emit(cmd.OutOrStdout(), out)
	},
}

var reachCmd = &cobra.Command{
	Use:   "reach START MAX_COST",
	Short: "List cells reachable from START, given as X,Y, within MAX_COST",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		g, m := loadMap()
		start := node(g, args[0])
		maxCost := must.Must1(strconv.ParseFloat(args[1], 64))
		reachable := must.Must1(pathfinder.FindAllReachable(g, m, start, maxCost))
		nodes := reachable.Members()
		sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] }) // Row-major order.
		emit(cmd.OutOrStdout(), coords(g, nodes))
	},
}

var costCmd = &cobra.Command{
	Use:   "cost X,Y X,Y...",
	Short: "Total cost of moving along a path of cells",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		g, m := loadMap()
		path := make([]grid.NodeID, len(args))
		for i, arg := range args {
			path[i] = node(g, arg)
		}
		for i := 1; i < len(path); i++ {
			if !m.Passable(path[i-1], path[i]) {
				log.Info("Path contains an impassable step", "from", args[i-1], "to", args[i])
			}
		}
		emit(cmd.OutOrStdout(), must.Must1(pathfinder.CostOfPath(m, path)))
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace START GOAL",
	Short: "Print each expansion of the path search from START to GOAL",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		g, m := loadMap()
		stepper := must.Must1(pathfinder.NewStepper(g, m, node(g, args[0]), node(g, args[1])))
		var snapshot pathfinder.StepSnapshot[grid.NodeID]
		for !stepper.Done() {
			snapshot = stepper.Step()
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%v\topen=%d\tclosed=%d\n", snapshot.StepIndex, g.Coord(snapshot.Current), len(snapshot.Open), len(snapshot.Closed))
		}
		snapshot = stepper.Step()
		if !snapshot.Found {
			panic(fmt.Errorf("%w: from %v to %v", pathfinder.ErrNoPath, args[0], args[1]))
		}
		emit(cmd.OutOrStdout(), coords(g, snapshot.Path))
	},
}

func init() {
	verifyFlag = pathCmd.Flags().Bool("verify", false, "Compare the cost with an exhaustive Dijkstra search")
	rootCmd.AddCommand(pathCmd, reachCmd, costCmd, traceCmd)
}
