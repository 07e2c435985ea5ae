package pathfinder

// Set is an unordered set of nodes.
type Set[NodeType comparable] map[NodeType]struct{}

func (s Set[NodeType]) Has(node NodeType) bool {
	_, ok := s[node]
	return ok
}

func (s Set[NodeType]) Add(node NodeType)    { s[node] = struct{}{} }
func (s Set[NodeType]) Delete(node NodeType) { delete(s, node) }
func (s Set[NodeType]) Len() int             { return len(s) }

// Members returns the nodes in unspecified order.
func (s Set[NodeType]) Members() []NodeType {
	nodes := make([]NodeType, 0, len(s))
	for node := range s {
		nodes = append(nodes, node)
	}
	return nodes
}

// SubsetOf is true if every member of s is a member of other.
func (s Set[NodeType]) SubsetOf(other Set[NodeType]) bool {
	for node := range s {
		if !other.Has(node) {
			return false
		}
	}
	return true
}
