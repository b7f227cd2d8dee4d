package search

import (
	"container/heap"
	"fmt"
)

// See: https://pkg.go.dev/container/heap priority queue example.

// Item is a stable handle on a frontier slot. The index is maintained by the
// heap.Interface methods and makes cost revision an O(log n) heap.Fix.
type Item[S comparable, A any] struct {
	node  *Node[S, A]
	index int
}

// Node returns the node currently stored in the slot.
func (it *Item[S, A]) Node() *Node[S, A] {
	return it.node
}

// frontierQueue is a min priority queue over frontier items.
type frontierQueue[S comparable, A any] struct {
	items []*Item[S, A]
	cmp   Comparator[S, A]
}

func (q frontierQueue[S, A]) Len() int {
	return len(q.items)
}

func (q frontierQueue[S, A]) Less(i, j int) bool {
	return q.cmp.Less(q.items[i].node, q.items[j].node)
}

func (q frontierQueue[S, A]) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *frontierQueue[S, A]) Push(x interface{}) {
	n := len(q.items)
	item := x.(*Item[S, A])
	item.index = n
	q.items = append(q.items, item)
}

func (q *frontierQueue[S, A]) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	q.items = old[0 : n-1]
	return item
}

// Frontier is a mutable priority queue dual-indexed by state: ordered
// extraction through the heap, membership and handle lookup through the map.
// At most one node per state is held; detection of duplicates and the choice
// between Push and Decrease are left to the caller via Find.
type Frontier[S comparable, A any] struct {
	queue   frontierQueue[S, A]
	byState map[S]*Item[S, A]
}

// NewFrontier initializes an empty frontier ordered by the comparator.
func NewFrontier[S comparable, A any](cmp Comparator[S, A]) *Frontier[S, A] {
	f := &Frontier[S, A]{
		queue:   frontierQueue[S, A]{cmp: cmp},
		byState: make(map[S]*Item[S, A]),
	}
	heap.Init(&f.queue)
	return f
}

// Push adds a node for a state not yet on the frontier. Pushing a duplicate
// state is a precondition violation and returns ErrDuplicateState.
func (f *Frontier[S, A]) Push(node *Node[S, A]) error {
	if _, ok := f.byState[node.State]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateState, node.State)
	}
	item := &Item[S, A]{node: node}
	heap.Push(&f.queue, item)
	f.byState[node.State] = item
	return nil
}

// Pop removes and returns the minimum-ordered node and its map entry.
func (f *Frontier[S, A]) Pop() (*Node[S, A], error) {
	node := f.queue.items[0].node
	if _, ok := f.byState[node.State]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrLookupMiss, node.State)
	}
	delete(f.byState, node.State)
	heap.Pop(&f.queue)
	if len(f.byState) != f.queue.Len() {
		return nil, fmt.Errorf("%w: map holds %d entries, queue %d", ErrFrontierDesync, len(f.byState), f.queue.Len())
	}
	return node, nil
}

// Top peeks at the minimum-ordered node.
func (f *Frontier[S, A]) Top() *Node[S, A] {
	return f.queue.items[0].node
}

// Find returns the handle for a state if one is on the frontier.
func (f *Frontier[S, A]) Find(state S) (*Item[S, A], bool) {
	item, ok := f.byState[state]
	return item, ok
}

// Decrease replaces the handle's node with one of better (lesser) order and
// restores the heap property. The replacement must carry the same state.
func (f *Frontier[S, A]) Decrease(item *Item[S, A], node *Node[S, A]) error {
	return f.Update(item, node)
}

// Update replaces the handle's node and restores the heap property,
// whichever direction the order moved.
func (f *Frontier[S, A]) Update(item *Item[S, A], node *Node[S, A]) error {
	if item.node.State != node.State {
		return fmt.Errorf("%w: handle holds %v, replacement holds %v", ErrFrontierDesync, item.node.State, node.State)
	}
	item.node = node
	f.byState[node.State] = item
	heap.Fix(&f.queue, item.index)
	return nil
}

// Empty reports whether the frontier holds no nodes.
func (f *Frontier[S, A]) Empty() bool {
	return f.queue.Len() == 0
}

// Len returns the number of nodes on the frontier.
func (f *Frontier[S, A]) Len() int {
	return f.queue.Len()
}
