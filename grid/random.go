package grid

import "math/rand"

// RandomOptions controls Random.
type RandomOptions struct {
	Connectivity Connectivity
	Clusters     int     // number of random walks
	Steps        int     // steps per walk
	Density      float64 // chance that a visited cell is closed
	Seed         int64
	KeepOpen     []Coord // never closed, e.g. start and goal
}

// Random returns a grid with clustered closed cells placed by seeded random walks.
// The same options always produce the same grid.
func Random(width, height int, options RandomOptions) (*Grid, error) {
	if options.Connectivity == 0 {
		options.Connectivity = Eight
	}
	g, err := New(width, height, options.Connectivity)
	if err != nil {
		return nil, err
	}
	keep := make(map[Coord]bool, len(options.KeepOpen))
	for _, c := range options.KeepOpen {
		keep[c] = true
	}
	r := rand.New(rand.NewSource(options.Seed))
	orthogonal := directions[:Four]
	for c := 0; c < options.Clusters; c++ {
		p := Coord{r.Intn(width), r.Intn(height)}
		for s := 0; s < options.Steps; s++ {
			if r.Float64() < options.Density && !keep[p] {
				id, _ := g.AtCoord(p)
				g.types[id] = Closed
			}
			d := orthogonal[r.Intn(len(orthogonal))]
			if _, ok := g.At(p.X+d.X, p.Y+d.Y); ok {
				p = Coord{p.X + d.X, p.Y + d.Y}
			}
		}
	}
	return g, nil
}
