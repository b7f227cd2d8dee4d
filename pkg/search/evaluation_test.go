package search

import (
	"testing"
)

// testHeuristic estimates the remaining distance for a handful of states.
func testHeuristic(state string) float64 {
	switch state {
	case "a":
		return 4.0
	case "b":
		return 2.0
	case "c":
		return 2.0
	default:
		return 99.0
	}
}

// Tests for success.

// TestNewWeightedAStarForSuccess tests for success.
func TestNewWeightedAStarForSuccess(t *testing.T) {
	cost, err := NewWeightedAStar[string, string](testHeuristic, 1.5)
	if err != nil {
		t.Errorf("Expected no error - got: %v.", err)
	}
	if cost == nil {
		t.Errorf("Expected a cost function.")
	}
}

// Tests for failure.

// TestNewWeightedAStarForFailure tests for failure.
func TestNewWeightedAStarForFailure(t *testing.T) {
	_, err := NewWeightedAStar[string, string](testHeuristic, 0.5)
	if err == nil {
		t.Errorf("Expected an error for a weight below 1.")
	}
}

// Tests for sanity.

// TestCostFunctionsForSanity tests for sanity.
func TestCostFunctionsForSanity(t *testing.T) {
	node := NewNode[string, string]("a", nil, "", 10)
	if f := NewDijkstra[string, string]().F(node); f != 10 {
		t.Errorf("Dijkstra should read g - got %f.", f)
	}
	if f := NewGreedy[string, string](testHeuristic).F(node); f != 4 {
		t.Errorf("Greedy should read h - got %f.", f)
	}
	if f := NewAStar[string, string](testHeuristic).F(node); f != 14 {
		t.Errorf("A* should read g+h - got %f.", f)
	}
	weighted, _ := NewWeightedAStar[string, string](testHeuristic, 2)
	if f := weighted.F(node); f != 18 {
		t.Errorf("Weighted A* should read g+w*h - got %f.", f)
	}
}

// TestCostFunctionPurityForSanity tests for sanity.
func TestCostFunctionPurityForSanity(t *testing.T) {
	node := NewNode[string, string]("b", nil, "", 7)
	cost := NewAStar[string, string](testHeuristic)
	first := cost.F(node)
	for i := 0; i < 5; i++ {
		if cost.F(node) != first {
			t.Errorf("f must be pure; evaluation %d diverged.", i)
		}
	}
}

// TestLowHForSanity tests for sanity.
func TestLowHForSanity(t *testing.T) {
	tie := NewLowH[string, string](testHeuristic)
	closer := NewNode[string, string]("b", nil, "", 0)
	farther := NewNode[string, string]("a", nil, "", 0)
	if !tie.Split(closer, farther) {
		t.Errorf("The node with lower h should win the tie.")
	}
	if tie.Split(farther, closer) {
		t.Errorf("The node with higher h should lose the tie.")
	}
}

// TestLowHTotalForSanity tests for sanity.
func TestLowHTotalForSanity(t *testing.T) {
	tie := NewLowHTotal[string, string](testHeuristic)
	nodeB := NewNode[string, string]("b", nil, "", 0)
	nodeC := NewNode[string, string]("c", nil, "", 0)
	// Equal h; the state comparison must decide, and exactly one way.
	if !tie.Split(nodeB, nodeC) {
		t.Errorf("b should order before c.")
	}
	if tie.Split(nodeC, nodeB) {
		t.Errorf("c must not also order before b.")
	}
}

// TestTiebreakingComparatorForSanity tests for sanity.
func TestTiebreakingComparatorForSanity(t *testing.T) {
	cmp := NewTiebreakingComparator(NewDijkstra[string, string](), NewLowH[string, string](testHeuristic))
	cheap := NewNode[string, string]("a", nil, "", 1)
	dear := NewNode[string, string]("b", nil, "", 2)
	if !cmp.Less(cheap, dear) {
		t.Errorf("Lower f must order first.")
	}
	// Equal f: the tie policy prefers lower h, so b beats a.
	tiedA := NewNode[string, string]("a", nil, "", 2)
	if !cmp.Less(dear, tiedA) {
		t.Errorf("The tie policy should prefer b over a.")
	}
}

// TestSimpleComparatorForSanity tests for sanity.
func TestSimpleComparatorForSanity(t *testing.T) {
	cmp := NewSimpleComparator(NewDijkstra[string, string]())
	cheap := NewNode[string, string]("a", nil, "", 1)
	dear := NewNode[string, string]("b", nil, "", 2)
	if !cmp.Less(cheap, dear) {
		t.Errorf("Lower f must order first.")
	}
	if cmp.Less(dear, cheap) {
		t.Errorf("Higher f must not order first.")
	}
}
