// Command pqbench replays a workload on both arraypq strategies at once and
// reports whether they removed the same elements in the same order, along
// with how long each took.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lanrat/arraypq"
	"github.com/lanrat/arraypq/workload"
)

var (
	capacity    = flag.Int("capacity", arraypq.DefaultCapacity, "maximum number of elements in each queue")
	numOps      = flag.Int("ops", 100000, "number of generated operations, ignored with -script")
	seed        = flag.Int64("seed", 1, "seed for generated operations")
	maxPriority = flag.Int("max-priority", 16, "generated priorities are in [0, max-priority]")
	scriptPath  = flag.String("script", "", "read operations from this file instead of generating them")
	verify      = flag.Bool("verify", false, "check each queue's iterator after every operation")
	verbose     = flag.Bool("v", false, "log the first differing outcomes in full")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("run", uuid.NewString())

	ops, err := loadOps()
	if err != nil {
		logger.Error("loading workload", "err", err)
		var cfgErr *arraypq.ConfigError
		if errors.As(err, &cfgErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := workload.Compare(ctx, ops, &workload.Config{Capacity: *capacity, Verify: *verify})
	if err != nil {
		logger.Error("replay failed", "err", err)
		os.Exit(1)
	}

	for _, r := range report.Results {
		logger.Info("replayed", "strategy", r.Strategy, "ops", report.Ops, "duration", r.Duration)
	}
	if !report.Equivalent() {
		i := report.Divergence
		logger.Error("strategies diverged", "op", i)
		if *verbose {
			for _, r := range report.Results {
				if i < len(r.Outcomes) {
					logger.Error("outcome", "strategy", r.Strategy, "got", r.Outcomes[i].String())
				}
			}
		}
		os.Exit(1)
	}
	logger.Info("strategies agree", "ops", report.Ops)
}

func loadOps() ([]workload.Op, error) {
	if *capacity < 0 {
		return nil, arraypq.NewConfigError("capacity", *capacity, "must not be negative")
	}
	if *scriptPath == "" {
		if *numOps < 0 {
			return nil, arraypq.NewConfigError("ops", *numOps, "must not be negative")
		}
		if *maxPriority < 0 {
			return nil, arraypq.NewConfigError("max-priority", *maxPriority, "must not be negative")
		}
		return workload.Generate(*seed, *numOps, *maxPriority), nil
	}

	f, err := os.Open(*scriptPath)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()
	return workload.Parse(f)
}
