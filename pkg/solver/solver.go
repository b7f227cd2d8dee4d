// Package solver offers a config-driven facade over the search drivers.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	"github.com/openplanners/bestfirst/pkg/common"
	"github.com/openplanners/bestfirst/pkg/search"
	"github.com/openplanners/bestfirst/pkg/tracer"
)

// Solver picks a search algorithm by configured name, caches solutions and
// traces what it did.
type Solver[S comparable, A any] struct {
	cfg   common.Config
	trace tracer.Tracer
	cache *common.TTLCache
	done  chan struct{}
	// Context, if set, cancels running searches cooperatively.
	Context context.Context
}

// New initializes a new solver. A nil tracer disables tracing.
func New[S comparable, A any](cfg common.Config, trace tracer.Tracer) *Solver[S, A] {
	if trace == nil {
		trace = tracer.NoopTracer{}
	}
	cache, done := common.NewCache(cfg.Solver.SolutionCacheTTL, time.Duration(cfg.Solver.SolutionCacheTimeout))
	return &Solver[S, A]{cfg: cfg, trace: trace, cache: cache, done: done}
}

// Stop terminates the solution cache's eviction loop.
func (s *Solver[S, A]) Stop() {
	close(s.done)
}

// costFunction builds the configured cost function over the heuristic.
func (s *Solver[S, A]) costFunction(h search.Heuristic[S]) (search.CostFunction[S, A], error) {
	switch s.cfg.Solver.Algorithm {
	case "dijkstra":
		return search.NewDijkstra[S, A](), nil
	case "greedy":
		return search.NewGreedy[S, A](h), nil
	case "astar", "rbfs":
		return search.NewAStar[S, A](h), nil
	case "wastar":
		return search.NewWeightedAStar[S, A](h, s.cfg.Solver.HeuristicWeight)
	default:
		return nil, fmt.Errorf("unknown algorithm: %s", s.cfg.Solver.Algorithm)
	}
}

// Solve runs the configured algorithm on the problem. Solutions are cached
// under the problem name for the configured TTL.
func (s *Solver[S, A]) Solve(name string, p search.Problem[S, A], h search.Heuristic[S]) (*search.Node[S, A], error) {
	if cached, ok := s.cache.Get(name); ok {
		klog.V(2).Infof("Serving solution for %s from the cache.", name)
		return cached.(*search.Node[S, A]), nil
	}
	if h == nil {
		h = search.ZeroHeuristic[S]
	}
	cost, err := s.costFunction(h)
	if err != nil {
		return nil, err
	}

	stats := &search.Stats{}
	driver := search.Driver[S, A]{
		Context:       s.Context,
		Stats:         stats,
		MaxExpansions: uint64(s.cfg.Solver.MaxExpansions),
	}
	tie := search.NewLowH[S, A](h)

	klog.V(2).Infof("Trying to solve %s with %s.", name, s.cfg.Solver.Algorithm)
	var node *search.Node[S, A]
	if s.cfg.Solver.Algorithm == "rbfs" {
		node, err = driver.RecursiveBestFirstSearch(p, cost, tie)
	} else {
		node, err = driver.BestFirstSearch(p, search.NewTiebreakingComparator(cost, tie))
	}

	event := tracer.Event{Problem: name, Algorithm: s.cfg.Solver.Algorithm, Stats: *stats}
	if err != nil {
		if errors.Is(err, search.ErrGoalNotFound) {
			klog.Warningf("No solution for %s: %v.", name, err)
			s.trace.TraceSearch(event)
		}
		return nil, err
	}
	event.Solved = true
	event.Cost = node.PathCost
	for _, state := range node.Path() {
		event.Path = append(event.Path, fmt.Sprintf("%v", state))
	}
	s.trace.TraceSearch(event)
	s.cache.Put(name, node)
	klog.V(2).Infof("Solved %s at cost %f after %d expansions.", name, node.PathCost, stats.Popped)
	return node, nil
}
