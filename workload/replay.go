package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/lanrat/arraypq"

	"golang.org/x/sync/errgroup"
)

// Config holds configuration settings for Compare
type Config struct {
	Capacity int  // capacity of the queue built for each strategy, <= 0 for arraypq.DefaultCapacity
	Verify   bool // walk each queue's iterator after every op and check it against Size
}

// Replay applies ops to q in order and returns one Outcome per op. Inserted
// tasks get sequential IDs starting at 1, counting only successful inserts.
// ctx is checked between ops. With verify set, the queue's iterator is walked
// after every op and must yield exactly Size() elements.
func Replay(ctx context.Context, q arraypq.PriorityQueue[Task], ops []Op, verify bool) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(ops))
	nextID := 1
	for i, op := range ops {
		select {
		case <-ctx.Done():
			return outcomes, ctx.Err()
		default:
		}

		o := Outcome{Op: op}
		switch op.Kind {
		case Insert:
			o.OK = q.Insert(Task{ID: nextID, Priority: op.Priority})
			if o.OK {
				o.Task = Task{ID: nextID, Priority: op.Priority}
				nextID++
			}
		case Remove:
			o.Task, o.OK = q.Remove()
		case Peek:
			o.Task, o.OK = q.Peek()
		case Delete:
			o.OK = q.Delete(Task{Priority: op.Priority})
		case Contains:
			o.OK = q.Contains(Task{Priority: op.Priority})
		case Clear:
			q.Clear()
			o.OK = true
		default:
			return outcomes, fmt.Errorf("op %d: unknown kind %s", i, op.Kind)
		}
		o.Size = q.Size()
		outcomes = append(outcomes, o)

		if verify {
			if err := checkIterator(q); err != nil {
				return outcomes, fmt.Errorf("op %d (%s): %w", i, op, err)
			}
		}
	}
	return outcomes, nil
}

// checkIterator walks q once and compares the number of elements seen with Size.
func checkIterator(q arraypq.PriorityQueue[Task]) error {
	n := 0
	for _, err := range q.All() {
		if err != nil {
			return err
		}
		n++
	}
	if n != q.Size() {
		return fmt.Errorf("iterator yielded %d elements, size is %d", n, q.Size())
	}
	return nil
}

// StrategyResult is the replay of a workload on one strategy.
type StrategyResult struct {
	Strategy arraypq.Strategy
	Outcomes []Outcome
	Duration time.Duration
}

// Report is the result of Compare.
type Report struct {
	Ops     int
	Results []StrategyResult
	// Divergence is the index of the first op whose outcome differs between
	// strategies, or -1 if every outcome matched.
	Divergence int
}

// Equivalent reports whether all strategies produced identical outcomes.
func (r *Report) Equivalent() bool {
	return r.Divergence < 0
}

// Compare replays ops on a fresh queue of each strategy concurrently. Each
// goroutine owns its queue. The first replay error cancels the others.
func Compare(ctx context.Context, ops []Op, config *Config) (*Report, error) {
	if config == nil {
		config = &Config{}
	}
	strategies := []arraypq.Strategy{arraypq.OrderedArray, arraypq.UnorderedArray}
	results := make([]StrategyResult, len(strategies))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		g.Go(func() error {
			q := arraypq.New[Task](CompareTasks, &arraypq.Config{Capacity: config.Capacity, Strategy: s})
			start := time.Now()
			outcomes, err := Replay(gctx, q, ops, config.Verify)
			if err != nil {
				return fmt.Errorf("%s strategy: %w", s, err)
			}
			results[i] = StrategyResult{Strategy: s, Outcomes: outcomes, Duration: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		Ops:        len(ops),
		Results:    results,
		Divergence: firstDivergence(results[0].Outcomes, results[1].Outcomes),
	}, nil
}

func firstDivergence(a, b []Outcome) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b))
	}
	return -1
}
