package search

import (
	"container/heap"
	"fmt"
	"math"

	"k8s.io/klog/v2"
)

// boundedNode pairs a node with its backed-up cost bound F. Each entry is
// its own handle into the local queue, so revising F is a heap.Fix.
type boundedNode[S comparable, A any] struct {
	node  *Node[S, A]
	bound float64
	index int
}

// boundQueue is the per-frame min priority queue of RBFS, ordered by the
// backed-up bound with the tie policy as secondary key. Many bounds are
// equal during back-propagation, so the tie policy is mandatory here.
type boundQueue[S comparable, A any] struct {
	entries []*boundedNode[S, A]
	tie     TiePolicy[S, A]
}

func (q boundQueue[S, A]) Len() int {
	return len(q.entries)
}

func (q boundQueue[S, A]) Less(i, j int) bool {
	a, b := q.entries[i], q.entries[j]
	if a.bound == b.bound {
		return q.tie.Split(a.node, b.node)
	}
	return a.bound < b.bound
}

func (q boundQueue[S, A]) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

func (q *boundQueue[S, A]) Push(x interface{}) {
	n := len(q.entries)
	entry := x.(*boundedNode[S, A])
	entry.index = n
	q.entries = append(q.entries, entry)
}

func (q *boundQueue[S, A]) Pop() interface{} {
	old := q.entries
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	q.entries = old[0 : n-1]
	return entry
}

// top returns the minimum-ordered entry.
func (q *boundQueue[S, A]) top() *boundedNode[S, A] {
	return q.entries[0]
}

// secondBound returns the bound of the second-minimum entry, or +inf if
// there is none. In a binary heap the runner-up sits among the root's
// children.
func (q *boundQueue[S, A]) secondBound() float64 {
	switch q.Len() {
	case 1:
		return math.Inf(1)
	case 2:
		return q.entries[1].bound
	default:
		return math.Min(q.entries[1].bound, q.entries[2].bound)
	}
}

// update revises an entry's bound in place and restores the heap property.
func (q *boundQueue[S, A]) update(entry *boundedNode[S, A], bound float64) {
	entry.bound = bound
	heap.Fix(q, entry.index)
}

// rbfs explores the subtree under node with backed-up cost fStored, giving
// up as soon as the cheapest frontier leaf exceeds bound. It returns the
// revised backed-up cost of the subtree, or the solution node the moment a
// goal is detected; a non-nil solution unwinds all enclosing frames without
// further work.
func (d Driver[S, A]) rbfs(p Problem[S, A], cost CostFunction[S, A], tie TiePolicy[S, A], create NodeFactory[S, A], stats *Stats, node *Node[S, A], fStored float64, bound float64) (float64, *Node[S, A], error) {
	if err := d.cancelled(); err != nil {
		return 0, nil, err
	}
	inf := math.Inf(1)
	fN := cost.F(node)

	if fN > bound {
		return fN, nil, nil
	}
	if p.GoalTest(node.State) {
		return fN, node, nil
	}
	if d.MaxExpansions > 0 && stats.Popped >= d.MaxExpansions {
		klog.Warningf("Expansion budget of %d exhausted.", d.MaxExpansions)
		return 0, nil, fmt.Errorf("%w: expansion budget %d exhausted", ErrGoalNotFound, d.MaxExpansions)
	}
	stats.Popped++

	actions := p.Actions(node.State)
	if len(actions) == 0 {
		return inf, nil, nil
	}

	children := &boundQueue[S, A]{tie: tie}
	heap.Init(children)
	for _, action := range actions {
		child := Child(p, create, node, action)
		stats.Pushed++
		fChild := cost.F(child)
		childBound := fChild
		if fN < fStored {
			// The stored value exceeds the static one, so this subtree was
			// already explored and backed up: children inherit the bound.
			childBound = math.Max(fStored, fChild)
		}
		heap.Push(children, &boundedNode[S, A]{node: child, bound: childBound})
	}

	for children.top().bound <= bound && children.top().bound < inf {
		best := children.top()
		secondBound := children.secondBound()
		revised, solution, err := d.rbfs(p, cost, tie, create, stats, best.node, best.bound, math.Min(bound, secondBound))
		if err != nil || solution != nil {
			return 0, solution, err
		}
		children.update(best, revised)
	}
	return children.top().bound, nil, nil
}

// RecursiveBestFirstSearch runs RBFS: a linear-space best-first search that
// re-grows subtrees under backed-up cost bounds. It returns a goal node, or
// ErrGoalNotFound when the whole tree backs up to +inf.
func (d Driver[S, A]) RecursiveBestFirstSearch(p Problem[S, A], cost CostFunction[S, A], tie TiePolicy[S, A]) (*Node[S, A], error) {
	create := d.create()
	stats := d.stats()

	var noAction A
	initial := create(p.Initial(), nil, noAction, 0)
	bound, solution, err := d.rbfs(p, cost, tie, create, stats, initial, cost.F(initial), math.Inf(1))
	if err != nil {
		return nil, err
	}
	if solution == nil {
		klog.Warningf("Search tree backed up to %f without reaching a goal.", bound)
		return nil, fmt.Errorf("%w: search tree backed up to %f", ErrGoalNotFound, bound)
	}
	return solution, nil
}

// RecursiveBestFirstSearch runs RBFS with default driver settings.
func RecursiveBestFirstSearch[S comparable, A any](p Problem[S, A], cost CostFunction[S, A], tie TiePolicy[S, A]) (*Node[S, A], error) {
	return Driver[S, A]{}.RecursiveBestFirstSearch(p, cost, tie)
}
