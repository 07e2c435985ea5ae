package internal

// ReconstructPath follows parent links back from target and returns the
// path in start-to-target order. The start is the first node with no parent.
func ReconstructPath[NodeType comparable](
	parentOf func(NodeType) (NodeType, bool),
	target NodeType,
) []NodeType {
	path := []NodeType{target}
	for current := target; ; {
		previousNode, exists := parentOf(current)
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	Reverse(path)
	return path
}

// Reverse reverses nodes in place.
func Reverse[NodeType any](nodes []NodeType) {
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
}
