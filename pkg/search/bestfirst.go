package search

import (
	"container/heap"
	"context"
	"fmt"

	"k8s.io/klog/v2"
)

// Stats counts frontier traffic during one search.
type Stats struct {
	Popped    uint64
	Pushed    uint64
	Decreased uint64
	Discarded uint64
}

// Driver carries the optional knobs of a search invocation. The zero value
// searches with parent-linked nodes, no cancellation, no budget and no
// counters.
type Driver[S comparable, A any] struct {
	// Context enables cooperative cancellation, checked at the top of the
	// expansion loop. Cancellation surfaces as the context's error, never as
	// ErrGoalNotFound.
	Context context.Context
	// Create selects the node representation. Defaults to NewNode.
	Create NodeFactory[S, A]
	// Stats, if non-nil, receives the frontier counters.
	Stats *Stats
	// MaxExpansions bounds the number of pops; zero means unbounded. An
	// exhausted budget reports ErrGoalNotFound.
	MaxExpansions uint64
}

func (d Driver[S, A]) create() NodeFactory[S, A] {
	if d.Create == nil {
		return NewNode[S, A]
	}
	return d.Create
}

func (d Driver[S, A]) stats() *Stats {
	if d.Stats == nil {
		return &Stats{}
	}
	return d.Stats
}

func (d Driver[S, A]) cancelled() error {
	if d.Context == nil {
		return nil
	}
	return d.Context.Err()
}

// handleChild decides the fate of a child offered to the frontier: push it,
// replace a costlier duplicate, or discard it. The returned node is
// informational only - the child if pushed, the displaced node if it
// replaced one, nil if discarded.
func handleChild[S comparable, A any](frontier *Frontier[S, A], child *Node[S, A], stats *Stats) (*Node[S, A], error) {
	if item, ok := frontier.Find(child.State); ok {
		duplicate := item.Node()
		if child.PathCost < duplicate.PathCost {
			klog.V(2).Infof("State %v: replacing cost %f with %f.", child.State, duplicate.PathCost, child.PathCost)
			if err := frontier.Decrease(item, child); err != nil {
				return nil, err
			}
			stats.Decreased++
			return duplicate, nil
		}
		klog.V(2).Infof("State %v: keeping cost %f, discarding %f.", child.State, duplicate.PathCost, child.PathCost)
		stats.Discarded++
		return nil, nil
	}
	if err := frontier.Push(child); err != nil {
		return nil, err
	}
	stats.Pushed++
	return child, nil
}

// BestFirstSearch runs graph search: a frontier with the decrease-key
// discipline plus a closed set of expanded states. It returns a least-cost
// goal node under an admissible consistent heuristic, or ErrGoalNotFound.
func (d Driver[S, A]) BestFirstSearch(p Problem[S, A], cmp Comparator[S, A]) (*Node[S, A], error) {
	create := d.create()
	stats := d.stats()
	frontier := NewFrontier(cmp)
	closed := make(map[S]struct{})

	var noAction A
	if err := frontier.Push(create(p.Initial(), nil, noAction, 0)); err != nil {
		return nil, err
	}
	stats.Pushed++

	for !frontier.Empty() {
		if err := d.cancelled(); err != nil {
			return nil, err
		}
		if d.MaxExpansions > 0 && stats.Popped >= d.MaxExpansions {
			klog.Warningf("Expansion budget of %d exhausted.", d.MaxExpansions)
			return nil, fmt.Errorf("%w: expansion budget %d exhausted", ErrGoalNotFound, d.MaxExpansions)
		}
		node, err := frontier.Pop()
		if err != nil {
			return nil, err
		}
		stats.Popped++
		klog.V(2).Infof("Expanding %v at cost %f.", node.State, node.PathCost)
		if p.GoalTest(node.State) {
			klog.V(2).Infof("Goal %v found; frontier holds %d states, closed %d.", node.State, frontier.Len(), len(closed))
			return node, nil
		}
		closed[node.State] = struct{}{}
		for _, action := range p.Actions(node.State) {
			successor := p.Result(node.State, action)
			if _, done := closed[successor]; done {
				continue
			}
			child := create(successor, node, action, node.PathCost+p.StepCost(node.State, action))
			if _, err := handleChild(frontier, child, stats); err != nil {
				return nil, err
			}
		}
	}
	klog.Warningf("Frontier exhausted after %d expansions without reaching a goal.", stats.Popped)
	return nil, fmt.Errorf("%w: frontier exhausted after %d expansions", ErrGoalNotFound, stats.Popped)
}

// treeQueue is the plain priority queue used by TreeSearch; no state lookup
// is needed because states along any branch are distinct.
type treeQueue[S comparable, A any] struct {
	nodes []*Node[S, A]
	cmp   Comparator[S, A]
}

func (q treeQueue[S, A]) Len() int {
	return len(q.nodes)
}

func (q treeQueue[S, A]) Less(i, j int) bool {
	return q.cmp.Less(q.nodes[i], q.nodes[j])
}

func (q treeQueue[S, A]) Swap(i, j int) {
	q.nodes[i], q.nodes[j] = q.nodes[j], q.nodes[i]
}

func (q *treeQueue[S, A]) Push(x interface{}) {
	q.nodes = append(q.nodes, x.(*Node[S, A]))
}

func (q *treeQueue[S, A]) Pop() interface{} {
	old := q.nodes
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // avoid memory leak
	q.nodes = old[0 : n-1]
	return node
}

// TreeSearch runs best-first search without a closed set or duplicate
// handling: every child is pushed unconditionally. Intended for
// combinatorial problems whose states never repeat along a branch.
func (d Driver[S, A]) TreeSearch(p Problem[S, A], cmp Comparator[S, A]) (*Node[S, A], error) {
	create := d.create()
	stats := d.stats()
	frontier := &treeQueue[S, A]{cmp: cmp}
	heap.Init(frontier)

	var noAction A
	heap.Push(frontier, create(p.Initial(), nil, noAction, 0))
	stats.Pushed++

	for frontier.Len() > 0 {
		if err := d.cancelled(); err != nil {
			return nil, err
		}
		if d.MaxExpansions > 0 && stats.Popped >= d.MaxExpansions {
			klog.Warningf("Expansion budget of %d exhausted.", d.MaxExpansions)
			return nil, fmt.Errorf("%w: expansion budget %d exhausted", ErrGoalNotFound, d.MaxExpansions)
		}
		node := heap.Pop(frontier).(*Node[S, A])
		stats.Popped++
		if p.GoalTest(node.State) {
			klog.V(2).Infof("Goal %v found; frontier holds %d nodes.", node.State, frontier.Len())
			return node, nil
		}
		for _, action := range p.Actions(node.State) {
			heap.Push(frontier, Child(p, create, node, action))
			stats.Pushed++
		}
	}
	klog.Warningf("Frontier exhausted after %d expansions without reaching a goal.", stats.Popped)
	return nil, fmt.Errorf("%w: frontier exhausted after %d expansions", ErrGoalNotFound, stats.Popped)
}

// BestFirstSearch runs graph search with default driver settings.
func BestFirstSearch[S comparable, A any](p Problem[S, A], cmp Comparator[S, A]) (*Node[S, A], error) {
	return Driver[S, A]{}.BestFirstSearch(p, cmp)
}

// TreeSearch runs tree search with default driver settings.
func TreeSearch[S comparable, A any](p Problem[S, A], cmp Comparator[S, A]) (*Node[S, A], error) {
	return Driver[S, A]{}.TreeSearch(p, cmp)
}
