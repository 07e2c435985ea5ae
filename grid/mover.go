package grid

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
	"github.com/pdrpinto/pathfinder/internal/logging"
)

// Default movement constants.
const (
	DefaultOrthogonalCost = 1.0
	DefaultDiagonalCost   = 1.4 // approximates √2
	// DefaultTieBreak scales the cross-product term of the heuristic.
	// It is a tunable: large values make the heuristic inadmissible.
	DefaultTieBreak = 0.001
)

// DiagonalRule decides when a diagonal step into an open cell is passable.
type DiagonalRule int

const (
	// NoCornerCutting allows a diagonal step only when both cells it passes between are open.
	NoCornerCutting DiagonalRule = iota
	// OrthogonalOnly refuses every diagonal step into an open cell.
	OrthogonalOnly
	// CornerCutting allows every diagonal step into an open cell.
	CornerCutting
)

var diagonalRuleNames = map[DiagonalRule]string{
	NoCornerCutting: "noCornerCutting",
	OrthogonalOnly:  "orthogonalOnly",
	CornerCutting:   "cornerCutting",
}

func (r DiagonalRule) String() string {
	if s, ok := diagonalRuleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("DiagonalRule(%d)", int(r))
}

// ParseDiagonalRule parses the String form of a rule, "" is NoCornerCutting.
func ParseDiagonalRule(s string) (DiagonalRule, error) {
	if s == "" {
		return NoCornerCutting, nil
	}
	for r, name := range diagonalRuleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown diagonal rule %q", s)
}

// Mover is the movement cost model for a Grid.
//
// It holds only configuration and reads cell types from the grid on every call,
// so it always sees the current state. It is safe for concurrent use.
type Mover struct {
	grid           *Grid
	orthogonalCost float64
	diagonalCost   float64
	tieBreak       float64
	diagonals      DiagonalRule
	log            logr.Logger
}

// MoverOption configures a Mover.
type MoverOption func(*Mover)

// WithCosts sets the cost of orthogonal and diagonal steps.
func WithCosts(orthogonal, diagonal float64) MoverOption {
	return func(m *Mover) { m.orthogonalCost, m.diagonalCost = orthogonal, diagonal }
}

// WithTieBreak sets the scale of the straight-line tie-breaking term, 0 disables it.
func WithTieBreak(scale float64) MoverOption {
	return func(m *Mover) { m.tieBreak = scale }
}

// WithDiagonals sets the DiagonalRule.
func WithDiagonals(rule DiagonalRule) MoverOption {
	return func(m *Mover) { m.diagonals = rule }
}

// WithLogger sets the logger for contract violations.
func WithLogger(log logr.Logger) MoverOption {
	return func(m *Mover) { m.log = log }
}

// NewMover returns a Mover for g with the default constants.
func NewMover(g *Grid, options ...MoverOption) *Mover {
	m := &Mover{
		grid:           g,
		orthogonalCost: DefaultOrthogonalCost,
		diagonalCost:   DefaultDiagonalCost,
		tieBreak:       DefaultTieBreak,
		diagonals:      NoCornerCutting,
		log:            logging.Log().WithName("grid"),
	}
	for _, o := range options {
		o(m)
	}
	return m
}

func (m *Mover) Grid() *Grid { return m.grid }

// Heuristic is the octile distance from node to target, plus a small term
// proportional to how far node lies off the straight line from start to target.
// The extra term prefers visually straight paths among equal-cost ones.
//
// The distance never overestimates for any non-negative costs: a diagonal dearer
// than two orthogonal steps counts as two, and a diagonal cheaper than an orthogonal
// step is the cheapest way to cover each step of the larger axis.
func (m *Mover) Heuristic(node, target, start NodeID) float64 {
	n, t, s := m.grid.Coord(node), m.grid.Coord(target), m.grid.Coord(start)
	dx := math.Abs(float64(n.X - t.X))
	dy := math.Abs(float64(n.Y - t.Y))
	orthogonal, diagonal := m.orthogonalCost, math.Min(m.diagonalCost, 2*m.orthogonalCost)
	var h float64
	if diagonal < orthogonal {
		h = diagonal * math.Max(dx, dy)
	} else {
		h = orthogonal*(dx+dy) + (diagonal-2*orthogonal)*math.Min(dx, dy)
	}

	dx1, dy1 := float64(n.X-t.X), float64(n.Y-t.Y)
	dx2, dy2 := float64(s.X-t.X), float64(s.Y-t.Y)
	cross := math.Abs(dx1*dy2 - dx2*dy1)
	return h + cross*m.tieBreak
}

// CostForMove is the orthogonal or diagonal step cost for a move into an open cell.
//
// Moves into a closed cell have no defined cost: they are logged as an error
// and cost 0, so a search that asks anyway still completes.
func (m *Mover) CostForMove(node, adjacent NodeID) float64 {
	from, to := m.grid.Cell(node), m.grid.Cell(adjacent)
	if to.Type == Open && (from.Type == Open || from.Type == Closed) {
		if isDiagonal(from.Coord, to.Coord) {
			return m.diagonalCost
		}
		return m.orthogonalCost
	}
	m.log.Error(nil, "Unhandled cell types for move", "from", from.Coord, "fromType", from.Type, "to", to.Coord, "toType", to.Type)
	return 0
}

// Passable refuses moves into closed cells, and diagonal moves as set by the DiagonalRule.
func (m *Mover) Passable(node, adjacent NodeID) bool {
	switch m.grid.Type(adjacent) {
	case Closed:
		return false
	case Open:
		from, to := m.grid.Coord(node), m.grid.Coord(adjacent)
		if !isDiagonal(from, to) {
			return true
		}
		switch m.diagonals {
		case OrthogonalOnly:
			return false
		case CornerCutting:
			return true
		default:
			return m.open(to.X, from.Y) && m.open(from.X, to.Y)
		}
	default:
		return true
	}
}

func (m *Mover) open(x, y int) bool {
	id, ok := m.grid.At(x, y)
	return ok && m.grid.Type(id) == Open
}

func isDiagonal(a, b Coord) bool { return a.X != b.X && a.Y != b.Y }
