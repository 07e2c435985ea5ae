package pathfinder

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current   NodeType // node popped by this step
	Open      map[NodeType]bool
	Closed    map[NodeType]bool
	CameFrom  map[NodeType]NodeType
	Done      bool
	Found     bool
	Path      []NodeType
	StepIndex int
}

// Stepper runs the same search as FindPath one node expansion at a time,
// for debugging tools and visualizers.
type Stepper[NodeType comparable] struct {
	search    *search[NodeType]
	stepCount int
	last      StepSnapshot[NodeType]
}

// NewStepper validates its input the way FindPath does and prepares a search.
func NewStepper[NodeType comparable](
	graph Graph[NodeType],
	mover Mover[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option,
) (*Stepper[NodeType], error) {
	if err := validate(graph, mover, startNode, goalNode); err != nil {
		return nil, err
	}
	opts := newOptions(options)
	s := &Stepper[NodeType]{search: newSearch(graph, mover, startNode, goalNode, opts.Logger)}
	s.last = s.snapshot(startNode)
	return s, nil
}

// Step pops one node and, unless it is the goal, expands it. It returns a snapshot.
// Once the search is done Step keeps returning the final snapshot.
func (s *Stepper[NodeType]) Step() StepSnapshot[NodeType] {
	if s.search.done {
		return s.last
	}
	s.search.step()
	s.stepCount++
	s.last = s.snapshot(s.search.current)
	return s.last
}

// Done is true once the target was reached or the open set emptied.
func (s *Stepper[NodeType]) Done() bool { return s.search.done }

func (s *Stepper[NodeType]) snapshot(current NodeType) StepSnapshot[NodeType] {
	snapshot := StepSnapshot[NodeType]{
		Current:   current,
		Open:      make(map[NodeType]bool, s.search.open.Len()),
		Closed:    make(map[NodeType]bool, s.search.closed.Len()),
		CameFrom:  s.search.table.cameFrom(),
		Done:      s.search.done,
		Found:     s.search.found,
		StepIndex: s.stepCount,
	}
	for _, node := range s.search.open.Nodes() {
		snapshot.Open[node] = true
	}
	for node := range s.search.closed {
		snapshot.Closed[node] = true
	}
	if s.search.found {
		snapshot.Path = s.search.path()
	}
	return snapshot
}
