package search

import (
	"context"
	"errors"
	"math"
	"testing"
)

// edgeTo is one outgoing road in a test problem.
type edgeTo struct {
	to   string
	cost float64
}

// mapProblem casts a small adjacency map as a Problem; the action is the
// destination state.
type mapProblem struct {
	initial string
	goal    string
	edges   map[string][]edgeTo
}

func (p mapProblem) Initial() string {
	return p.initial
}

func (p mapProblem) Actions(state string) []string {
	var actions []string
	for _, e := range p.edges[state] {
		actions = append(actions, e.to)
	}
	return actions
}

func (p mapProblem) Result(_ string, action string) string {
	return action
}

func (p mapProblem) StepCost(state string, action string) float64 {
	for _, e := range p.edges[state] {
		if e.to == action {
			return e.cost
		}
	}
	return math.Inf(1)
}

func (p mapProblem) GoalTest(state string) bool {
	return state == p.goal
}

// tracingProblem records the order in which states are expanded.
type tracingProblem struct {
	mapProblem
	expanded *[]string
}

func (p tracingProblem) Actions(state string) []string {
	*p.expanded = append(*p.expanded, state)
	return p.mapProblem.Actions(state)
}

// newTrivialProblem returns a problem whose initial state is the goal.
func newTrivialProblem() mapProblem {
	return mapProblem{initial: "X", goal: "X", edges: map[string][]edgeTo{}}
}

// newLinearProblem returns A -> B -> C with costs 1 and 2.
func newLinearProblem() mapProblem {
	return mapProblem{
		initial: "A",
		goal:    "C",
		edges: map[string][]edgeTo{
			"A": {{"B", 1}},
			"B": {{"C", 2}},
		},
	}
}

// newBranchingProblem returns the diamond where M1 is first generated at
// cost 10 and later re-generated at cost 3 via M2.
func newBranchingProblem() mapProblem {
	return mapProblem{
		initial: "S",
		goal:    "G",
		edges: map[string][]edgeTo{
			"S":  {{"M1", 10}, {"M2", 1}},
			"M2": {{"M1", 2}},
			"M1": {{"G", 1}},
		},
	}
}

// newUnreachableProblem returns a problem whose goal has no incoming edge.
func newUnreachableProblem() mapProblem {
	return mapProblem{
		initial: "A",
		goal:    "G",
		edges: map[string][]edgeTo{
			"A": {{"B", 1}},
		},
	}
}

// newDeadEndProblem returns a non-goal initial state with no actions.
func newDeadEndProblem() mapProblem {
	return mapProblem{initial: "A", goal: "G", edges: map[string][]edgeTo{}}
}

// dijkstraComparator orders by path cost with a total tie-break.
func dijkstraComparator() Comparator[string, string] {
	return NewTiebreakingComparator(NewDijkstra[string, string](), NewLowHTotal[string, string](ZeroHeuristic[string]))
}

// Tests for success.

// TestBestFirstSearchForSuccess tests for success.
func TestBestFirstSearchForSuccess(t *testing.T) {
	node, err := BestFirstSearch[string, string](newLinearProblem(), dijkstraComparator())
	if err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	if node.State != "C" || node.PathCost != 3 {
		t.Errorf("Expected C at cost 3 - got %v at %f.", node.State, node.PathCost)
	}
}

// TestTreeSearchForSuccess tests for success.
func TestTreeSearchForSuccess(t *testing.T) {
	node, err := TreeSearch[string, string](newLinearProblem(), dijkstraComparator())
	if err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	if node.State != "C" || node.PathCost != 3 {
		t.Errorf("Expected C at cost 3 - got %v at %f.", node.State, node.PathCost)
	}
}

// TestHandleChildForSuccess tests for success.
func TestHandleChildForSuccess(t *testing.T) {
	frontier := NewFrontier(dijkstraComparator())
	stats := &Stats{}
	child := NewNode[string, string]("A", nil, "", 1)
	result, err := handleChild(frontier, child, stats)
	if err != nil {
		t.Errorf("Expected no error - got: %v.", err)
	}
	if result != child {
		t.Errorf("A fresh child should be pushed and returned.")
	}
}

// Tests for failure.

// TestBestFirstSearchForFailure tests for failure.
func TestBestFirstSearchForFailure(t *testing.T) {
	_, err := BestFirstSearch[string, string](newUnreachableProblem(), dijkstraComparator())
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("Expected ErrGoalNotFound - got: %v.", err)
	}

	_, err = BestFirstSearch[string, string](newDeadEndProblem(), dijkstraComparator())
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("Expected ErrGoalNotFound - got: %v.", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Driver[string, string]{Context: ctx}.BestFirstSearch(newLinearProblem(), dijkstraComparator())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled - got: %v.", err)
	}
	if errors.Is(err, ErrGoalNotFound) {
		t.Errorf("Cancellation must not be reported as ErrGoalNotFound.")
	}
}

// TestTreeSearchForFailure tests for failure.
func TestTreeSearchForFailure(t *testing.T) {
	_, err := TreeSearch[string, string](newDeadEndProblem(), dijkstraComparator())
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("Expected ErrGoalNotFound - got: %v.", err)
	}
}

// TestMaxExpansionsForFailure tests for failure.
func TestMaxExpansionsForFailure(t *testing.T) {
	driver := Driver[string, string]{MaxExpansions: 1}
	_, err := driver.BestFirstSearch(newLinearProblem(), dijkstraComparator())
	if !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("Expected ErrGoalNotFound on an exhausted budget - got: %v.", err)
	}
}

// Tests for sanity.

// TestBestFirstSearchTrivialForSanity tests for sanity.
func TestBestFirstSearchTrivialForSanity(t *testing.T) {
	node, err := BestFirstSearch[string, string](newTrivialProblem(), dijkstraComparator())
	if err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	if node.State != "X" {
		t.Errorf("Expected X - got %v.", node.State)
	}
	if node.PathCost != 0 {
		t.Errorf("Expected cost 0 - got %f.", node.PathCost)
	}
	if node.Parent != nil {
		t.Errorf("The initial node must have no parent.")
	}
}

// TestBestFirstSearchReplacementForSanity tests for sanity.
func TestBestFirstSearchReplacementForSanity(t *testing.T) {
	stats := &Stats{}
	driver := Driver[string, string]{Stats: stats}
	node, err := driver.BestFirstSearch(newBranchingProblem(), dijkstraComparator())
	if err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	if node.PathCost != 4 {
		t.Errorf("Expected cost 4 - got %f.", node.PathCost)
	}
	expectedPath := []string{"S", "M2", "M1", "G"}
	path := node.Path()
	if len(path) != len(expectedPath) {
		t.Fatalf("Expected %d states on the path - got %d.", len(expectedPath), len(path))
	}
	for i, state := range expectedPath {
		if path[i] != state {
			t.Errorf("Found %s - expected %s!", path[i], state)
		}
	}
	if stats.Decreased != 1 {
		t.Errorf("M1 should have been decreased exactly once - got %d.", stats.Decreased)
	}

	// The walked actions must account for the full path cost.
	total := 0.0
	problem := newBranchingProblem()
	states := node.Path()
	for i, action := range node.Actions() {
		total += problem.StepCost(states[i], action)
	}
	if total != node.PathCost {
		t.Errorf("Walked cost %f does not match node cost %f.", total, node.PathCost)
	}
}

// TestBestFirstSearchSingleExpansionForSanity tests for sanity.
func TestBestFirstSearchSingleExpansionForSanity(t *testing.T) {
	var expanded []string
	problem := tracingProblem{newBranchingProblem(), &expanded}
	_, err := BestFirstSearch[string, string](problem, dijkstraComparator())
	if err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	seen := map[string]int{}
	for _, state := range expanded {
		seen[state]++
		if seen[state] > 1 {
			t.Errorf("State %s was expanded more than once.", state)
		}
	}
}

// TestBestFirstSearchDeterminismForSanity tests for sanity.
func TestBestFirstSearchDeterminismForSanity(t *testing.T) {
	var first, second []string
	if _, err := BestFirstSearch[string, string](tracingProblem{newBranchingProblem(), &first}, dijkstraComparator()); err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	if _, err := BestFirstSearch[string, string](tracingProblem{newBranchingProblem(), &second}, dijkstraComparator()); err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	if len(first) != len(second) {
		t.Fatalf("Traces differ in length: %d vs %d.", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Traces diverge at step %d: %s vs %s.", i, first[i], second[i])
		}
	}
}

// TestStatsForSanity tests for sanity.
func TestStatsForSanity(t *testing.T) {
	stats := &Stats{}
	driver := Driver[string, string]{Stats: stats}
	if _, err := driver.BestFirstSearch(newLinearProblem(), dijkstraComparator()); err != nil {
		t.Errorf("Expected a solution - got: %v.", err)
	}
	if stats.Popped != 3 {
		t.Errorf("Expected 3 pops (A, B, C) - got %d.", stats.Popped)
	}
	if stats.Pushed != 3 {
		t.Errorf("Expected 3 pushes - got %d.", stats.Pushed)
	}
}
