// Package grid is a 2D grid graph for the pathfinder engine.
//
// A Grid is an arena of cells addressed by NodeID handles. Adjacency is wired
// once when the grid is built; only the Open/Closed type of a cell changes
// afterwards. Mover is the matching movement cost model.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Type is the traversability of a cell.
type Type int

const (
	Open Type = iota
	Closed
)

func (t Type) String() string {
	switch t {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "type(" + strconv.Itoa(int(t)) + ")"
	}
}

// NodeID is a handle for a cell in a Grid.
type NodeID int

// Coord is a cell position, Y grows downwards.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// ParseCoord parses "X,Y".
func ParseCoord(s string) (Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Coord{}, fmt.Errorf("invalid coordinate %q: want X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return Coord{X: x, Y: y}, nil
}

// Cell is a snapshot of one grid cell.
type Cell struct {
	Coord
	Type Type
}

// Connectivity is the number of neighbors wired for an interior cell.
type Connectivity int

const (
	Four  Connectivity = 4
	Eight Connectivity = 8
)

var (
	ErrInvalidSize         = errors.New("invalid grid size")
	ErrInvalidConnectivity = errors.New("invalid connectivity")
	ErrInvalidLayout       = errors.New("invalid grid layout")
)

// Neighbor order: orthogonal first, then diagonal. Search tie-breaks depend on it.
var directions = [...]Coord{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0}, // N E S W
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1}, // NE SE SW NW
}

// Grid is a rectangular grid of cells.
//
// Concurrency: adjacency and coordinates are immutable. Cell types are guarded by a
// read-write lock, so SetType may run alongside searches. A search in progress may or
// may not see the change, searches started after SetType returns will.
type Grid struct {
	width, height int
	connectivity  Connectivity
	adjacent      [][]NodeID

	mu    sync.RWMutex
	types []Type
}

// New returns a width x height grid of open cells.
func New(width, height int, connectivity Connectivity) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if connectivity != Four && connectivity != Eight {
		return nil, fmt.Errorf("%w: %d", ErrInvalidConnectivity, connectivity)
	}
	g := &Grid{
		width:        width,
		height:       height,
		connectivity: connectivity,
		adjacent:     make([][]NodeID, width*height),
		types:        make([]Type, width*height),
	}
	dirs := directions[:connectivity]
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id, _ := g.At(x, y)
			adjacent := make([]NodeID, 0, len(dirs))
			for _, d := range dirs {
				if next, ok := g.At(x+d.X, y+d.Y); ok {
					adjacent = append(adjacent, next)
				}
			}
			g.adjacent[id] = adjacent
		}
	}
	return g, nil
}

// Parse builds a grid from a text layout: '.' is open, '#' is closed.
// Blank lines are ignored, all other lines must have the same length.
func Parse(layout string, connectivity Connectivity) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(layout, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidLayout)
	}
	g, err := New(len(rows[0]), len(rows), connectivity)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidLayout, y, len(row), g.width)
		}
		for x, c := range row {
			id, _ := g.At(x, y)
			switch c {
			case '.':
				g.types[id] = Open
			case '#':
				g.types[id] = Closed
			default:
				return nil, fmt.Errorf("%w: unexpected %q at %d,%d", ErrInvalidLayout, c, x, y)
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int                 { return g.width }
func (g *Grid) Height() int                { return g.height }
func (g *Grid) Len() int                   { return len(g.adjacent) }
func (g *Grid) Connectivity() Connectivity { return g.connectivity }

// At returns the node at x, y; false if the position is outside the grid.
func (g *Grid) At(x, y int) (NodeID, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return -1, false
	}
	return NodeID(y*g.width + x), true
}

// AtCoord is At(c.X, c.Y).
func (g *Grid) AtCoord(c Coord) (NodeID, bool) { return g.At(c.X, c.Y) }

// Contains is true if id is a cell of g. A nil grid contains nothing.
func (g *Grid) Contains(id NodeID) bool { return g != nil && id >= 0 && int(id) < len(g.adjacent) }

// Adjacent returns the neighbors of id. The slice is shared and must not be modified.
func (g *Grid) Adjacent(id NodeID) []NodeID {
	if !g.Contains(id) {
		return nil
	}
	return g.adjacent[id]
}

// Coord of a node. The result is meaningless if !g.Contains(id).
func (g *Grid) Coord(id NodeID) Coord {
	return Coord{X: int(id) % g.width, Y: int(id) / g.width}
}

// Type of a node, nodes outside the grid are Closed.
func (g *Grid) Type(id NodeID) Type {
	if !g.Contains(id) {
		return Closed
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.types[id]
}

// Cell returns the coordinate and type of id.
func (g *Grid) Cell(id NodeID) Cell { return Cell{Coord: g.Coord(id), Type: g.Type(id)} }

// SetType changes the type of a cell.
func (g *Grid) SetType(id NodeID, t Type) error {
	if !g.Contains(id) {
		return fmt.Errorf("node %d is not in the grid", id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.types[id] = t
	return nil
}

func (g *Grid) Open(id NodeID) error  { return g.SetType(id, Open) }
func (g *Grid) Close(id NodeID) error { return g.SetType(id, Closed) }

// Nodes returns all node handles in row-major order.
func (g *Grid) Nodes() []NodeID {
	nodes := make([]NodeID, len(g.adjacent))
	for i := range nodes {
		nodes[i] = NodeID(i)
	}
	return nodes
}

// String returns the layout in Parse format.
func (g *Grid) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	b := &strings.Builder{}
	for i, t := range g.types {
		if t == Closed {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
		if (i+1)%g.width == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
