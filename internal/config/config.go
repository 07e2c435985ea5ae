// Package config loads map files for the pathfind command.
//
// A map file is YAML:
//
//	connectivity: 8
//	mover:
//	  orthogonalCost: 1.0
//	  diagonalCost: 1.4
//	  tieBreak: 0.001
//	  diagonals: noCornerCutting
//	layout: |
//	  .....
//	  .#...
package config

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/pdrpinto/pathfinder/grid"
	"sigs.k8s.io/yaml"
)

// Config is the content of a map file.
type Config struct {
	// Connectivity is 4 or 8, default 8.
	Connectivity int    `json:"connectivity,omitempty"`
	Mover        Mover  `json:"mover,omitempty"`
	Layout       string `json:"layout"`
}

// Mover constants, unset values take the grid defaults.
type Mover struct {
	OrthogonalCost *float64 `json:"orthogonalCost,omitempty"`
	DiagonalCost   *float64 `json:"diagonalCost,omitempty"`
	TieBreak       *float64 `json:"tieBreak,omitempty"`
	Diagonals      string   `json:"diagonals,omitempty"`
}

// Load reads and parses a map file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	return c, nil
}

// Parse parses map file content.
func Parse(b []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Build creates the grid and mover described by c.
func (c *Config) Build(log logr.Logger) (*grid.Grid, *grid.Mover, error) {
	connectivity := grid.Connectivity(c.Connectivity)
	if connectivity == 0 {
		connectivity = grid.Eight
	}
	g, err := grid.Parse(c.Layout, connectivity)
	if err != nil {
		return nil, nil, err
	}
	rule, err := grid.ParseDiagonalRule(c.Mover.Diagonals)
	if err != nil {
		return nil, nil, err
	}
	orthogonal, diagonal := grid.DefaultOrthogonalCost, grid.DefaultDiagonalCost
	if c.Mover.OrthogonalCost != nil {
		orthogonal = *c.Mover.OrthogonalCost
	}
	if c.Mover.DiagonalCost != nil {
		diagonal = *c.Mover.DiagonalCost
	}
	if orthogonal < 0 || diagonal < 0 {
		return nil, nil, fmt.Errorf("negative move cost: orthogonal %v, diagonal %v", orthogonal, diagonal)
	}
	options := []grid.MoverOption{grid.WithCosts(orthogonal, diagonal), grid.WithDiagonals(rule), grid.WithLogger(log)}
	if c.Mover.TieBreak != nil {
		options = append(options, grid.WithTieBreak(*c.Mover.TieBreak))
	}
	return g, grid.NewMover(g, options...), nil
}
