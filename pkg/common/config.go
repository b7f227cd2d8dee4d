package common

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"k8s.io/klog/v2"
)

// Config holds all the configuration information.
type Config struct {
	Generic GenericConfig `json:"generic"`
	Solver  SolverConfig  `json:"solver"`
}

// GenericConfig captures generic configuration fields.
type GenericConfig struct {
	MongoEndpoint string `json:"mongo_endpoint"`
	TraceEvents   bool   `json:"trace_events"`
	LogFile       string `json:"log_file"`
}

// SolverConfig holds solver related configs.
type SolverConfig struct {
	Algorithm            string  `json:"algorithm"`
	HeuristicWeight      float64 `json:"heuristic_weight"`
	MaxExpansions        int     `json:"max_expansions"`
	SolutionCacheTTL     int     `json:"solution_cache_ttl"`
	SolutionCacheTimeout int     `json:"solution_cache_timeout"`
}

const (
	// MaxExpansionsLimit is the max number of expansions a search may be budgeted.
	MaxExpansionsLimit = 10000000
	// MaxSolutionCacheTimeout is max timeout (ms) between cache eviction runs.
	MaxSolutionCacheTimeout = 50000
	// MaxSolutionCacheTTL is max time-to-live (ms) for an entry in the solution cache.
	MaxSolutionCacheTTL = 500000
)

// Algorithms lists the supported search algorithm names.
var Algorithms = []string{"dijkstra", "greedy", "astar", "wastar", "rbfs"}

// LoadConfig reads the configuration file and marshals it into an object.
func LoadConfig(filename string, createType func() interface{}) (interface{}, error) {
	tmp, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %s", err)
	}
	cfg := createType()
	err = json.Unmarshal(tmp, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file: %s", err)
	}
	return cfg, nil
}

// ParseConfig loads the configuration from a JSON file.
func ParseConfig(filename string) (Config, error) {
	tmp, err := LoadConfig(filename, func() interface{} {
		return &Config{}
	})
	if err != nil {
		return Config{}, fmt.Errorf("error parsing config: %s", err)
	}
	result := tmp.(*Config)

	if !validAlgorithm(result.Solver.Algorithm) {
		return *result, fmt.Errorf("invalid input value: unknown algorithm: %s", result.Solver.Algorithm)
	}
	if result.Solver.HeuristicWeight < 1 {
		return *result, fmt.Errorf("invalid input value: heuristic weight must be >= 1")
	}
	if result.Solver.MaxExpansions < 0 ||
		result.Solver.MaxExpansions > MaxExpansionsLimit ||
		result.Solver.SolutionCacheTimeout <= 0 ||
		result.Solver.SolutionCacheTimeout > MaxSolutionCacheTimeout ||
		result.Solver.SolutionCacheTTL <= 0 ||
		result.Solver.SolutionCacheTTL > MaxSolutionCacheTTL {
		return *result, fmt.Errorf("invalid input value: Out of the provided limits")
	}
	if result.Generic.TraceEvents && !checkURL(result.Generic.MongoEndpoint) {
		return *result, fmt.Errorf("invalid URL")
	}

	return *result, nil
}

// validAlgorithm checks if the algorithm name is supported.
func validAlgorithm(name string) bool {
	for _, algorithm := range Algorithms {
		if name == algorithm {
			return true
		}
	}
	return false
}

// checkURL validate if the input url is fine.
func checkURL(urlpath string) bool {
	_, err := url.ParseRequestURI(urlpath)
	if err != nil {
		klog.Error(err)
		return false
	}
	return true
}
