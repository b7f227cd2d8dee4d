package search

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// CostFunction computes the scalar f(n) that orders the frontier.
type CostFunction[S comparable, A any] interface {
	F(n *Node[S, A]) float64
}

// TiePolicy orders nodes whose f values are equal. Split reports whether a
// should be extracted before b. The policy may measure something unrelated
// to the cost function.
type TiePolicy[S comparable, A any] interface {
	Split(a, b *Node[S, A]) bool
}

// Comparator lifts cost function and tie policy into a node ordering. Less
// reports whether a should be extracted before b; the frontier is
// min-oriented.
type Comparator[S comparable, A any] interface {
	Less(a, b *Node[S, A]) bool
}

// Dijkstra: f(n) = g(n).
type dijkstra[S comparable, A any] struct{}

// NewDijkstra returns the cost function f(n) = g(n).
func NewDijkstra[S comparable, A any]() CostFunction[S, A] {
	return dijkstra[S, A]{}
}

func (dijkstra[S, A]) F(n *Node[S, A]) float64 {
	return n.PathCost
}

// Greedy: f(n) = h(n.state).
type greedy[S comparable, A any] struct {
	h Heuristic[S]
}

// NewGreedy returns the cost function f(n) = h(n).
func NewGreedy[S comparable, A any](h Heuristic[S]) CostFunction[S, A] {
	return greedy[S, A]{h}
}

func (c greedy[S, A]) F(n *Node[S, A]) float64 {
	return c.h(n.State)
}

// AStar: f(n) = g(n) + h(n.state).
type aStar[S comparable, A any] struct {
	h Heuristic[S]
}

// NewAStar returns the cost function f(n) = g(n) + h(n).
func NewAStar[S comparable, A any](h Heuristic[S]) CostFunction[S, A] {
	return aStar[S, A]{h}
}

func (c aStar[S, A]) F(n *Node[S, A]) float64 {
	return n.PathCost + c.h(n.State)
}

// WeightedAStar: f(n) = g(n) + w*h(n.state).
type weightedAStar[S comparable, A any] struct {
	h      Heuristic[S]
	weight float64
}

// NewWeightedAStar returns the cost function f(n) = g(n) + w*h(n). The
// weight must be at least 1.
func NewWeightedAStar[S comparable, A any](h Heuristic[S], weight float64) (CostFunction[S, A], error) {
	if weight < 1 {
		return nil, fmt.Errorf("invalid weight %f: must be >= 1", weight)
	}
	return weightedAStar[S, A]{h, weight}, nil
}

func (c weightedAStar[S, A]) F(n *Node[S, A]) float64 {
	return n.PathCost + c.weight*c.h(n.State)
}

// lowH prefers the node with the smaller heuristic value; a strict weak
// order, not total.
type lowH[S comparable, A any] struct {
	h Heuristic[S]
}

// NewLowH returns a tie policy preferring the node closer to a goal
// according to h.
func NewLowH[S comparable, A any](h Heuristic[S]) TiePolicy[S, A] {
	return lowH[S, A]{h}
}

func (t lowH[S, A]) Split(a, b *Node[S, A]) bool {
	return t.h(a.State) < t.h(b.State)
}

// lowHTotal is lowH with a final comparison on the states themselves,
// yielding a total order and hence a deterministic extraction order.
type lowHTotal[S constraints.Ordered, A any] struct {
	h Heuristic[S]
}

// NewLowHTotal returns a tie policy preferring lower h, breaking remaining
// ties by comparing the states directly.
func NewLowHTotal[S constraints.Ordered, A any](h Heuristic[S]) TiePolicy[S, A] {
	return lowHTotal[S, A]{h}
}

func (t lowHTotal[S, A]) Split(a, b *Node[S, A]) bool {
	ah, bh := t.h(a.State), t.h(b.State)
	if ah == bh {
		return a.State < b.State
	}
	return ah < bh
}

// tiebreakingComparator compares on f, falling back to the tie policy on
// equality.
type tiebreakingComparator[S comparable, A any] struct {
	cost CostFunction[S, A]
	tie  TiePolicy[S, A]
}

// NewTiebreakingComparator composes a cost function with a tie policy.
func NewTiebreakingComparator[S comparable, A any](cost CostFunction[S, A], tie TiePolicy[S, A]) Comparator[S, A] {
	return tiebreakingComparator[S, A]{cost, tie}
}

func (c tiebreakingComparator[S, A]) Less(a, b *Node[S, A]) bool {
	af, bf := c.cost.F(a), c.cost.F(b)
	if af == bf {
		return c.tie.Split(a, b)
	}
	return af < bf
}

// simpleComparator compares on f only. Useful when costs are known to be
// distinct or a deterministic order is unimportant.
type simpleComparator[S comparable, A any] struct {
	cost CostFunction[S, A]
}

// NewSimpleComparator orders nodes by f alone, without tie-breaking.
func NewSimpleComparator[S comparable, A any](cost CostFunction[S, A]) Comparator[S, A] {
	return simpleComparator[S, A]{cost}
}

func (c simpleComparator[S, A]) Less(a, b *Node[S, A]) bool {
	return c.cost.F(a) < c.cost.F(b)
}
