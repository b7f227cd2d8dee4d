package search

// Problem describes a state-space search problem. States must be comparable
// so they can serve as map keys; equality and hashing agree by construction.
type Problem[S comparable, A any] interface {
	// Initial returns the start state.
	Initial() S
	// Actions enumerates the actions applicable in a state. May be empty.
	Actions(state S) []A
	// Result returns the deterministic successor of applying an action.
	Result(state S, action A) S
	// StepCost returns the non-negative cost of applying an action.
	StepCost(state S, action A) float64
	// GoalTest reports whether a state satisfies the goal. Pure predicate.
	GoalTest(state S) bool
}

// Heuristic estimates the remaining cost from a state to any goal.
type Heuristic[S comparable] func(state S) float64

// ZeroHeuristic estimates nothing; it turns A* into Dijkstra.
func ZeroHeuristic[S comparable](S) float64 {
	return 0
}

// Child builds the successor node of applying an action to the parent's
// state, through the given node factory.
func Child[S comparable, A any](p Problem[S, A], create NodeFactory[S, A], parent *Node[S, A], action A) *Node[S, A] {
	state := p.Result(parent.State, action)
	return create(state, parent, action, parent.PathCost+p.StepCost(parent.State, action))
}
