package search

import (
	"testing"
)

// Tests for success.

// TestNewNodeForSuccess tests for success.
func TestNewNodeForSuccess(t *testing.T) {
	root := NewNode[string, string]("a", nil, "", 0)
	child := NewNode[string, string]("b", root, "walk", 1)
	if child.Parent != root {
		t.Errorf("Expected the parent back-link to be kept.")
	}
}

// TestNewComboNodeForSuccess tests for success.
func TestNewComboNodeForSuccess(t *testing.T) {
	root := NewNode[string, string]("a", nil, "", 0)
	child := NewComboNode[string, string]("b", root, "walk", 1)
	if child.Parent != nil {
		t.Errorf("A combo node must not keep a parent back-link.")
	}
	if child.State != "b" || child.PathCost != 1 {
		t.Errorf("Expected state b at cost 1 - got %v at %f.", child.State, child.PathCost)
	}
}

// Tests for failure.

// N/A.

// Tests for sanity.

// TestPathForSanity tests for sanity.
func TestPathForSanity(t *testing.T) {
	nodeA := NewNode[string, string]("a", nil, "", 0)
	nodeB := NewNode[string, string]("b", nodeA, "walk", 1)
	nodeC := NewNode[string, string]("c", nodeB, "run", 3)
	path := nodeC.Path()
	expected := []string{"a", "b", "c"}
	if len(path) != len(expected) {
		t.Fatalf("Expected %d states - got %d.", len(expected), len(path))
	}
	for i, state := range expected {
		if path[i] != state {
			t.Errorf("Found %s - expected %s!", path[i], state)
		}
	}
}

// TestActionsForSanity tests for sanity.
func TestActionsForSanity(t *testing.T) {
	nodeA := NewNode[string, string]("a", nil, "", 0)
	nodeB := NewNode[string, string]("b", nodeA, "walk", 1)
	nodeC := NewNode[string, string]("c", nodeB, "run", 3)
	actions := nodeC.Actions()
	expected := []string{"walk", "run"}
	if len(actions) != len(expected) {
		t.Fatalf("Expected %d actions - got %d.", len(expected), len(actions))
	}
	for i, action := range expected {
		if actions[i] != action {
			t.Errorf("Found %s - expected %s!", actions[i], action)
		}
	}
}

// TestSharedAncestorsForSanity tests for sanity.
func TestSharedAncestorsForSanity(t *testing.T) {
	root := NewNode[string, string]("a", nil, "", 0)
	left := NewNode[string, string]("b", root, "walk", 1)
	right := NewNode[string, string]("c", root, "run", 2)
	if left.Parent != right.Parent {
		t.Errorf("Siblings must share their ancestor chain.")
	}
	if left.Path()[0] != right.Path()[0] {
		t.Errorf("Both paths must start at the shared root.")
	}
}
