// Package romania casts the classic AIMA pathfinding example as a search
// problem: get from Arad to Bucharest via the Romanian road system.
package romania

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Problem holds the road map and the straight-line distances to Bucharest.
// The action is the destination city.
type Problem struct {
	initial string
	roads   map[string]map[string]float64
	sld     map[string]float64
}

// New returns the problem of driving from Arad to Bucharest.
func New() *Problem {
	return NewFrom("Arad")
}

// NewFrom returns the problem of driving from the given city to Bucharest.
func NewFrom(city string) *Problem {
	return &Problem{
		initial: city,
		// Road costs from city to city as an adjacency map.
		roads: map[string]map[string]float64{
			"Arad":           {"Zerind": 75, "Sibiu": 140, "Timisoara": 118},
			"Bucharest":      {"Pitesti": 101, "Fagaras": 211},
			"Craiova":        {"Drobeta": 120, "Rimnicu Vilcea": 146, "Pitesti": 138},
			"Drobeta":        {"Mehadia": 75, "Craiova": 120},
			"Fagaras":        {"Sibiu": 99, "Bucharest": 211},
			"Lugoj":          {"Timisoara": 111, "Mehadia": 70},
			"Mehadia":        {"Lugoj": 70, "Drobeta": 75},
			"Oradea":         {"Zerind": 71, "Sibiu": 151},
			"Pitesti":        {"Rimnicu Vilcea": 97, "Bucharest": 101, "Craiova": 138},
			"Rimnicu Vilcea": {"Sibiu": 80, "Pitesti": 97, "Craiova": 146},
			"Sibiu":          {"Fagaras": 99, "Rimnicu Vilcea": 80, "Arad": 140, "Oradea": 151},
			"Timisoara":      {"Arad": 118, "Lugoj": 111},
			"Zerind":         {"Oradea": 71, "Arad": 75},
		},
		// Straight-line distance from city to Bucharest.
		sld: map[string]float64{
			"Arad":           366,
			"Bucharest":      0,
			"Craiova":        160,
			"Drobeta":        242,
			"Fagaras":        176,
			"Lugoj":          244,
			"Mehadia":        241,
			"Oradea":         380,
			"Pitesti":        100,
			"Rimnicu Vilcea": 193,
			"Sibiu":          253,
			"Timisoara":      329,
			"Zerind":         374,
		},
	}
}

func (p *Problem) Initial() string {
	return p.initial
}

// Actions returns the neighbouring cities, sorted for a deterministic
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
	return state == "Bucharest"
}

// H estimates the remaining distance as the straight line to Bucharest.
// Admissible and consistent: roads are never shorter than the crow flies.
func (p *Problem) H(state string) float64 {
	return p.sld[state]
}
