package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"k8s.io/klog/v2"

	"github.com/openplanners/bestfirst/pkg/common"
	"github.com/openplanners/bestfirst/pkg/examples/roadmap"
	"github.com/openplanners/bestfirst/pkg/examples/romania"
	"github.com/openplanners/bestfirst/pkg/search"
	"github.com/openplanners/bestfirst/pkg/solver"
	"github.com/openplanners/bestfirst/pkg/tracer"
)

var (
	config  string
	mapFile string
)

func init() {
	flag.StringVar(&config, "config", "defaults.json", "Path to the configuration file.")
	flag.StringVar(&mapFile, "map", "", "Optional YAML road map; defaults to the Romania example.")
}

func main() {
	klog.InitFlags(nil)
	klog.Info("Hello from your friendly best-first search solver...")

	// config stuff.
	flag.Parse()
	cfg, err := common.ParseConfig(config)
	if err != nil {
		klog.Fatalf("Error loading solver config: %v", err)
	}

	// set logFile
	if cfg.Generic.LogFile != "" {
		err := flag.Set("logtostderr", "false")
		if err != nil {
			klog.Fatalf("Error setting flag logtostderr: %v", err)
		}
		err = flag.Set("alsologtostderr", "true")
		if err != nil {
			klog.Fatalf("Error setting flag alsologtostderr: %v", err)
		}

		logFile, err := os.OpenFile(cfg.Generic.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			klog.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()

		multiWriter := io.MultiWriter(os.Stdout, logFile)
		klog.SetOutput(multiWriter)
		defer func() {
			klog.Flush()
		}()
		klog.Infof("Successfuly added to klog output the log file: %s", cfg.Generic.LogFile)
	}

	var trace tracer.Tracer = tracer.NoopTracer{}
	if cfg.Generic.TraceEvents {
		trace = tracer.NewMongoTracer(cfg.Generic.MongoEndpoint)
	}

	var problem search.Problem[string, string]
	var heuristic search.Heuristic[string]
	name := "romania"
	if mapFile != "" {
		loaded, err := roadmap.Load(mapFile)
		if err != nil {
			klog.Fatalf("Error loading road map: %v", err)
		}
		problem = loaded
		heuristic = loaded.H
		name = mapFile
	} else {
		instance := romania.New()
		problem = instance
		heuristic = instance.H
	}

	s := solver.New[string, string](cfg, trace)
	defer s.Stop()
	node, err := s.Solve(name, problem, heuristic)
	if err != nil {
		klog.Fatalf("No solution: %v", err)
	}
	for i, state := range node.Path() {
		fmt.Printf("%3d: %v\n", i, state)
	}
	fmt.Printf("total cost: %f\n", node.PathCost)
}
