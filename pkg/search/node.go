package search

// Node represents one tip of a discovered path. Nodes are immutable after
// construction; ancestor chains are shared between frontier entries and the
// returned solution.
type Node[S comparable, A any] struct {
	State    S
	Parent   *Node[S, A]
	Action   A
	PathCost float64
}

// NodeFactory selects the node representation used by a search.
type NodeFactory[S comparable, A any] func(state S, parent *Node[S, A], action A, pathCost float64) *Node[S, A]

// NewNode creates a node that keeps the parent back-chain; solutions are read
// by walking Parent links.
func NewNode[S comparable, A any](state S, parent *Node[S, A], action A, pathCost float64) *Node[S, A] {
	return &Node[S, A]{State: state, Parent: parent, Action: action, PathCost: pathCost}
}

// NewComboNode creates a node without a parent pointer, for combinatorial
// searches whose solution is reconstructed from the state itself.
func NewComboNode[S comparable, A any](state S, _ *Node[S, A], action A, pathCost float64) *Node[S, A] {
	return &Node[S, A]{State: state, Action: action, PathCost: pathCost}
}

// Path returns the states from the initial node to n, in order.
func (n *Node[S, A]) Path() []S {
	var reversed []S
	for cur := n; cur != nil; cur = cur.Parent {
		reversed = append(reversed, cur.State)
	}
	path := make([]S, len(reversed))
	for i, s := range reversed {
		path[len(path)-1-i] = s
	}
	return path
}

// Actions returns the actions taken from the initial node to n, in order.
// The initial node itself carries no action.
func (n *Node[S, A]) Actions() []A {
	var reversed []A
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		reversed = append(reversed, cur.Action)
	}
	actions := make([]A, len(reversed))
	for i, a := range reversed {
		actions[len(actions)-1-i] = a
	}
	return actions
}
