package pathfinder

import (
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/go-logr/logr"
	"github.com/pdrpinto/pathfinder/internal/logging"
)

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
//
// The engine only reads a graph, it never changes adjacency.
type Graph[NodeType comparable] interface {
	// Adjacent returns the neighbors of node.
	// Order matters: ties between equal-cost candidates go to the one discovered first.
	Adjacent(node NodeType) []NodeType
	// Contains is false for nodes that do not belong to the graph.
	Contains(node NodeType) bool
}

// Mover supplies the domain-specific cost model for a traversal.
//
// Implementations must not cache per-node answers between calls,
// node state may change between searches.
type Mover[NodeType comparable] interface {
	// Heuristic estimates the remaining cost from node to target.
	// A heuristic that overestimates gives fast but possibly non-optimal paths.
	Heuristic(node, target, start NodeType) float64
	// CostForMove is the non-negative cost of the single step from node to adjacent.
	CostForMove(node, adjacent NodeType) float64
	// Passable reports whether the step from node to adjacent is allowed at all.
	Passable(node, adjacent NodeType) bool
}

// Result contains the outcome of a path search.
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Logger          logr.Logger
	Recorder        Recorder
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches FindPaths runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger replaces the default root logger.
func WithLogger(logger logr.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithRecorder reports statistics for every search to recorder.
func WithRecorder(recorder Recorder) Option {
	return func(options *Options) { options.Recorder = recorder }
}

func newOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Logger:          logging.Log(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

func (options Options) record(query Query, outcome Outcome, expanded int, began time.Time) {
	if options.Recorder != nil {
		options.Recorder.RecordSearch(SearchStats{
			Query:         query,
			Outcome:       outcome,
			ExpandedNodes: expanded,
			Duration:      time.Since(began),
		})
	}
}

// FindPath returns the cheapest path from startNode to goalNode under mover.
//
// The path includes both endpoints. If startNode == goalNode the path is just [startNode].
// Errors match ErrInvalidInput or ErrNoPath, and in both cases Result.Found is false.
//
// FindPath runs to completion on the calling goroutine, there is no cancellation.
func FindPath[NodeType comparable](
	graph Graph[NodeType],
	mover Mover[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) (Result[NodeType], error) {
	searchOptions := newOptions(options)
	began := time.Now()
	if err := validate(graph, mover, startNode, goalNode); err != nil {
		searchOptions.record(QueryPath, OutcomeInvalid, 0, began)
		return Result[NodeType]{}, err
	}

	s := newSearch(graph, mover, startNode, goalNode, searchOptions.Logger)
	for !s.done {
		s.step()
	}
	log := searchOptions.Logger.V(1)
	if !s.found {
		searchOptions.record(QueryPath, OutcomeNoPath, s.expanded, began)
		log.Info("No path", "start", startNode, "goal", goalNode, "expanded", s.expanded)
		return Result[NodeType]{ExpandedNodes: s.expanded}, fmt.Errorf("%w: from %v to %v", ErrNoPath, startNode, goalNode)
	}
	result := Result[NodeType]{
		Path:          s.path(),
		TotalCost:     s.table.g(goalNode),
		ExpandedNodes: s.expanded,
		Found:         true,
	}
	searchOptions.record(QueryPath, OutcomeFound, s.expanded, began)
	log.Info("Found path", "start", startNode, "goal", goalNode, "length", len(result.Path), "cost", result.TotalCost, "expanded", s.expanded)
	return result, nil
}

func validate[NodeType comparable](graph Graph[NodeType], mover Mover[NodeType], nodes ...NodeType) error {
	if graph == nil {
		return fmt.Errorf("%w: nil graph", ErrInvalidInput)
	}
	if mover == nil {
		return fmt.Errorf("%w: nil mover", ErrInvalidInput)
	}
	for _, node := range nodes {
		if !graph.Contains(node) {
			return fmt.Errorf("%w: node %v is not in the graph", ErrInvalidInput, node)
		}
	}
	return nil
}

func validCostBound(maxCost float64) error {
	if math.IsNaN(maxCost) || maxCost < 0 {
		return fmt.Errorf("%w: max cost %v", ErrInvalidInput, maxCost)
	}
	return nil
}
