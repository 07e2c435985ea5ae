// Command pathfind runs pathfinder searches over a grid map file.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdrpinto/pathfinder/grid"
	"github.com/pdrpinto/pathfinder/internal/config"
	"github.com/pdrpinto/pathfinder/internal/logging"
	"github.com/pdrpinto/pathfinder/internal/must"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:     "pathfind",
		Short:   "Shortest path and reachability searches on grid maps",
		Version: "0.1.0",
	}
	log = logging.Log()

	// Global Flags
	mapPath    *string
	output     *string
	verbose    *int
	panicOnErr *bool
)

func init() {
	mapPath = rootCmd.PersistentFlags().StringP("map", "m", "", "Map file (YAML) to search, see the generate command")
	output = rootCmd.PersistentFlags().StringP("output", "o", "yaml", "Output format: json, json-pretty or yaml")
	verbose = rootCmd.PersistentFlags().IntP("verbose", "v", 0, "Verbosity for logging")
	panicOnErr = rootCmd.PersistentFlags().Bool("panic", false, "panic on error instead of exit code 1")

	cobra.OnInitialize(func() { logging.Init(*verbose) }) // After flags are parsed
}

// loadMap loads the --map file.
func loadMap() (*grid.Grid, *grid.Mover) {
	if *mapPath == "" {
		panic(errors.New(`required flag "map" not set`))
	}
	c := must.Must1(config.Load(*mapPath))
	g, m, err := c.Build(log.WithName("grid"))
	must.Must(err, "%v", *mapPath)
	return g, m
}

// node parses an X,Y argument into a node of g.
func node(g *grid.Grid, arg string) grid.NodeID {
	c := must.Must1(grid.ParseCoord(arg))
	id, ok := g.AtCoord(c)
	if !ok {
		panic(fmt.Errorf("%v is outside the %vx%v map", c, g.Width(), g.Height()))
	}
	return id
}

func coords(g *grid.Grid, nodes []grid.NodeID) []grid.Coord {
	result := make([]grid.Coord, len(nodes))
	for i, n := range nodes {
		result[i] = g.Coord(n)
	}
	return result
}

func main() {
	// Code in this package panics with an error to exit.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, r)
			if *panicOnErr {
				panic(r)
			}
			os.Exit(1)
		}
		os.Exit(0)
	}()
	must.Must(rootCmd.Execute())
}
