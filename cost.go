package pathfinder

import "fmt"

// CostOfPath sums mover.CostForMove over each consecutive pair in path.
//
// It is safe to call on anything: a nil mover or a path shorter than two nodes
// is logged and reported as an error with a cost of 0.
func CostOfPath[NodeType comparable](mover Mover[NodeType], path []NodeType, options ...Option) (float64, error) {
	log := newOptions(options).Logger
	if mover == nil {
		err := fmt.Errorf("%w: nil mover", ErrInvalidInput)
		log.Error(err, "Cannot evaluate path cost")
		return 0, err
	}
	if len(path) < 2 {
		err := fmt.Errorf("%w: %d nodes", ErrPathTooShort, len(path))
		log.Error(err, "Cannot evaluate path cost")
		return 0, err
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += mover.CostForMove(path[i-1], path[i])
	}
	return total, nil
}
