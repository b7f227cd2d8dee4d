// Package search implements domain-independent best-first graph search.
//
// Clients describe a state-space problem through the Problem interface and
// pick an ordering by composing a cost function (Dijkstra, greedy, A*,
// weighted A*) with a tie-breaking policy. Three drivers consume that
// ordering: BestFirstSearch (graph search with a closed set and a
// decrease-key frontier), TreeSearch (combinatorial problems without
// duplicate states) and RecursiveBestFirstSearch (linear-space RBFS).
package search
