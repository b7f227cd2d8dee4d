// Package tsp casts the travelling salesman problem as an implicit-graph
// search: a state is the tour's edge set so far, an action picks the next
// edge. States never repeat along a branch, so the problem is combinatorial
// and meant for tree search with combo nodes.
package tsp

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Edge connects two cities with a travel cost.
type Edge struct {
	U, V int
	Cost float64
}

// Problem is a TSP instance. Edges are kept sorted by cost; a state encodes
// the chosen edge indices as its bytes, in ascending order, so every edge
// set is generated exactly once.
type Problem struct {
	n     int
	edges []Edge
}

// New builds a TSP instance over n cities, numbered from 0.
func New(n int, edges []Edge) (*Problem, error) {
	if n < 3 {
		return nil, fmt.Errorf("a tour needs at least 3 cities, got %d", n)
	}
	if len(edges) > 255 {
		return nil, fmt.Errorf("at most 255 edges supported, got %d", len(edges))
	}
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	slices.SortFunc(sorted, func(a, b Edge) bool {
		return a.Cost < b.Cost
	})
	for _, e := range sorted {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			return nil, fmt.Errorf("edge (%d, %d) does not fit %d cities", e.U, e.V, n)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("edge (%d, %d) has negative cost %f", e.U, e.V, e.Cost)
		}
	}
	return &Problem{n: n, edges: sorted}, nil
}

// FourCities returns the minimal complete instance; its optimal tour costs 24.
func FourCities() *Problem {
	problem, _ := New(4, []Edge{
		{0, 1, 1},
		{0, 2, 2},
		{0, 3, 4},
		{1, 2, 7},
		{1, 3, 11},
		{2, 3, 16},
	})
	return problem
}

// Initial returns the empty tour.
func (p *Problem) Initial() string {
	return ""
}

// Actions returns the edge indices that extend the partial tour without
// breaking it: indices stay ascending, no city exceeds degree two, and no
// cycle closes before the tour is complete.
func (p *Problem) Actions(state string) []int {
	if len(state) >= p.n {
		return nil
	}
	last := -1
	if len(state) > 0 {
		last = int(state[len(state)-1])
	}
	var actions []int
	for i := last + 1; i < len(p.edges); i++ {
		if p.extends(state, i) {
			actions = append(actions, i)
		}
	}
	return actions
}

func (p *Problem) Result(state string, action int) string {
	// Appending the raw byte; a string(byte) conversion would re-encode
	// indices above 127 as UTF-8.
	return state + string([]byte{byte(action)})
}

func (p *Problem) StepCost(_ string, action int) float64 {
	return p.edges[action].Cost
}

// GoalTest reports whether the edge set is a Hamiltonian cycle: n edges,
// every city of degree two, one connected component.
func (p *Problem) GoalTest(state string) bool {
	if len(state) != p.n {
		return false
	}
	degrees := make([]int, p.n)
	parents := newComponents(p.n)
	for _, b := range []byte(state) {
		e := p.edges[int(b)]
		degrees[e.U]++
		degrees[e.V]++
		parents.union(e.U, e.V)
	}
	for city, degree := range degrees {
		if degree != 2 {
			return false
		}
		if parents.find(city) != parents.find(0) {
			return false
		}
	}
	return true
}

// H estimates the cheapest imaginable completion: the sum of the cheapest
// remaining edges that could still be chosen. Never overestimates.
func (p *Problem) H(state string) float64 {
	remaining := p.n - len(state)
	if remaining <= 0 {
		return 0
	}
	last := -1
	if len(state) > 0 {
		last = int(state[len(state)-1])
	}
	if len(p.edges)-(last+1) < remaining {
		return math.Inf(1)
	}
	total := 0.0
	for _, e := range p.edges[last+1 : last+1+remaining] {
		total += e.Cost
	}
	return total
}

// Tour decodes a state back into its edges.
func (p *Problem) Tour(state string) []Edge {
	tour := make([]Edge, 0, len(state))
	for _, b := range []byte(state) {
		tour = append(tour, p.edges[int(b)])
	}
	return tour
}

// extends checks whether adding an edge keeps the partial tour valid.
func (p *Problem) extends(state string, next int) bool {
	degrees := make([]int, p.n)
	parents := newComponents(p.n)
	for _, b := range []byte(state) {
		e := p.edges[int(b)]
		degrees[e.U]++
		degrees[e.V]++
		parents.union(e.U, e.V)
	}
	e := p.edges[next]
	if degrees[e.U] >= 2 || degrees[e.V] >= 2 {
		return false
	}
	if parents.find(e.U) == parents.find(e.V) {
		// Closing a cycle is only the final move of a complete tour.
		return len(state)+1 == p.n
	}
	return true
}

// components is a plain union-find over city indices.
type components []int

func newComponents(n int) components {
	parents := make(components, n)
	for i := range parents {
		parents[i] = i
	}
	return parents
}

func (c components) find(i int) int {
	for c[i] != i {
		i = c[i]
	}
	return i
}

func (c components) union(i, j int) {
	c[c.find(i)] = c.find(j)
}
