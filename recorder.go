package pathfinder

import "time"

// Query names the kind of search being recorded.
type Query string

const (
	QueryPath      Query = "path"
	QueryReachable Query = "reachable"
)

// Outcome of a single search call.
type Outcome string

const (
	OutcomeFound   Outcome = "found"
	OutcomeNoPath  Outcome = "no_path"
	OutcomeInvalid Outcome = "invalid"
)

// SearchStats describes one completed search call.
type SearchStats struct {
	Query         Query
	Outcome       Outcome
	ExpandedNodes int
	Duration      time.Duration
}

// Recorder receives SearchStats, see the metrics package for a Prometheus implementation.
// RecordSearch may be called from several goroutines by FindPaths.
type Recorder interface {
	RecordSearch(stats SearchStats)
}
