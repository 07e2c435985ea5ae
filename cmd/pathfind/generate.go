package main

import (
	"strconv"

	"github.com/pdrpinto/pathfinder/grid"
	"github.com/pdrpinto/pathfinder/internal/config"
	"github.com/pdrpinto/pathfinder/internal/must"
	"github.com/spf13/cobra"
)

var (
	generateSeed         *int64
	generateClusters     *int
	generateSteps        *int
	generateDensity      *float64
	generateConnectivity *int
	generateKeep         *[]string
)

var generateCmd = &cobra.Command{
	Use:   "generate WIDTH HEIGHT",
	Short: "Print a map file with clusters of closed cells placed at random",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		width := must.Must1(strconv.Atoi(args[0]))
		height := must.Must1(strconv.Atoi(args[1]))
		options := grid.RandomOptions{
			Connectivity: grid.Connectivity(*generateConnectivity),
			Clusters:     *generateClusters,
			Steps:        *generateSteps,
			Density:      *generateDensity,
			Seed:         *generateSeed,
		}
		for _, arg := range *generateKeep {
			options.KeepOpen = append(options.KeepOpen, must.Must1(grid.ParseCoord(arg)))
		}
		g := must.Must1(grid.Random(width, height, options))
		emit(cmd.OutOrStdout(), config.Config{Connectivity: int(g.Connectivity()), Layout: g.String()})
	},
}

func init() {
	generateSeed = generateCmd.Flags().Int64("seed", 1, "Random seed, the same seed gives the same map")
	generateClusters = generateCmd.Flags().Int("clusters", 4, "Number of random walks placing closed cells")
	generateSteps = generateCmd.Flags().Int("steps", 10, "Steps per random walk")
	generateDensity = generateCmd.Flags().Float64("density", 0.6, "Chance that a visited cell is closed")
	generateConnectivity = generateCmd.Flags().IntP("connectivity", "c", 8, "Neighbors per cell, 4 or 8")
	generateKeep = generateCmd.Flags().StringSlice("keep", nil, "X,Y cells that stay open")
	rootCmd.AddCommand(generateCmd)
}
