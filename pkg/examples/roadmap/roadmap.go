// Package roadmap turns a YAML description of a weighted graph into a
// search problem, so clients can run searches over data files without
// writing code.
package roadmap

import (
	"fmt"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"
)

// edgeSpec describes one road in the file.
type edgeSpec struct {
	From          string  `yaml:"from"`
	To            string  `yaml:"to"`
	Cost          float64 `yaml:"cost"`
	Bidirectional bool    `yaml:"bidirectional"`
}

// fileSpec is the on-disk format.
type fileSpec struct {
	Start     string             `yaml:"start"`
	Goal      string             `yaml:"goal"`
	Edges     []edgeSpec         `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic"`
}

// Problem is a weighted-graph search problem loaded from a file. The action
// is the destination vertex.
type Problem struct {
	start     string
	goal      string
	roads     map[string]map[string]float64
	heuristic map[string]float64
}

// Parse builds a problem from YAML data.
func Parse(data []byte) (*Problem, error) {
	spec := fileSpec{}
	if err := yaml.UnmarshalStrict(data, &spec); err != nil {
		return nil, fmt.Errorf("unable to parse road map: %s", err)
	}
	if spec.Start == "" || spec.Goal == "" {
		return nil, fmt.Errorf("road map needs both a start and a goal")
	}
	problem := &Problem{
		start:     spec.Start,
		goal:      spec.Goal,
		roads:     make(map[string]map[string]float64),
		heuristic: spec.Heuristic,
	}
	for _, e := range spec.Edges {
		if e.Cost < 0 {
			return nil, fmt.Errorf("road %s -> %s has negative cost %f", e.From, e.To, e.Cost)
		}
		problem.addRoad(e.From, e.To, e.Cost)
		if e.Bidirectional {
			problem.addRoad(e.To, e.From, e.Cost)
		}
	}
	return problem, nil
}

// Load reads and parses a road map file.
func Load(filename string) (*Problem, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read road map file: %s", err)
	}
	return Parse(data)
}

func (p *Problem) addRoad(from, to string, cost float64) {
	if p.roads[from] == nil {
		p.roads[from] = make(map[string]float64)
	}
	p.roads[from][to] = cost
}

func (p *Problem) Initial() string {
	return p.start
}

// Actions returns the reachable neighbours, sorted for a deterministic
// expansion order.
func (p *Problem) Actions(state string) []string {
	neighbours := maps.Keys(p.roads[state])
	slices.Sort(neighbours)
	return neighbours
}

func (p *Problem) Result(_ string, action string) string {
	return action
}

func (p *Problem) StepCost(state string, action string) float64 {
	return p.roads[state][action]
}

func (p *Problem) GoalTest(state string) bool {
	return state == p.goal
}

// H reads the optional heuristic table; vertices missing from it estimate
// zero, which keeps the heuristic admissible.
func (p *Problem) H(state string) float64 {
	return p.heuristic[state]
}
