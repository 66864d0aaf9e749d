package main

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xaunsurn/xaunsurnds/avltree"
	"github.com/xaunsurn/xaunsurnds/config"
	"github.com/xaunsurn/xaunsurnds/deque"
	"github.com/xaunsurn/xaunsurnds/fenwick"
	"github.com/xaunsurn/xaunsurnds/graph"
	"github.com/xaunsurn/xaunsurnds/hashring"
	"github.com/xaunsurn/xaunsurnds/journal"
	"github.com/xaunsurn/xaunsurnds/list"
	"github.com/xaunsurn/xaunsurnds/metrics"
	"github.com/xaunsurn/xaunsurnds/queue"
	"github.com/xaunsurn/xaunsurnds/segtree"
	"github.com/xaunsurn/xaunsurnds/set"
	"github.com/xaunsurn/xaunsurnds/skiplist"
	"github.com/xaunsurn/xaunsurnds/stack"
)

// workload exercises one structure and returns the number of operations it
// performed.
type workload func(items, workers int) (int, error)

// workloads maps structure names to their bench workloads.
var workloads = map[string]workload{
	"stack":    benchStack,
	"queue":    benchQueue,
	"deque":    benchDeque,
	"list":     benchList,
	"set":      benchSet,
	"avltree":  benchAVLTree,
	"skiplist": benchSkipList,
	"fenwick":  benchFenwick,
	"segtree":  benchSegTree,
	"graph":    benchGraph,
	"hashring": benchHashRing,
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Run concurrent workloads over the collection packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := newLogger()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer logger.Sync()

			return runBench(cmd, cfg, logger)
		},
	}
}

func runBench(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) error {
	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		go func() {
			logger.Info("serving metrics", zap.String("addr", cfg.Metrics.Addr))
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	selected := cfg.Bench.Structures
	if len(selected) == 0 {
		for name := range workloads {
			selected = append(selected, name)
		}
	}

	logger.Info("starting bench",
		zap.Strings("structures", selected),
		zap.Int("items", cfg.Bench.Items),
		zap.Int("workers", cfg.Bench.Workers))

	for _, name := range selected {
		run, ok := workloads[name]
		if !ok {
			return fmt.Errorf("unknown structure %q", name)
		}

		start := time.Now()
		ops, err := run(cfg.Bench.Items, cfg.Bench.Workers)
		elapsed := time.Since(start)

		if err != nil {
			m.RecordError(name, "bench")
			logger.Error("workload failed", zap.String("structure", name), zap.Error(err))
			return fmt.Errorf("workload %s: %w", name, err)
		}

		m.RecordOp(name, "bench", elapsed)
		m.SetSize(name, cfg.Bench.Items)

		rate := float64(ops) / elapsed.Seconds()
		logger.Info("workload done",
			zap.String("structure", name),
			zap.Int("ops", ops),
			zap.Duration("elapsed", elapsed),
			zap.Float64("ops_per_sec", rate))
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %10d ops in %10v (%12.0f ops/s)\n", name, ops, elapsed, rate)
	}

	if cfg.Journal.Path != "" {
		if err := journalRun(cfg, runID); err != nil {
			return fmt.Errorf("journal run: %w", err)
		}
		logger.Info("run journaled", zap.String("path", cfg.Journal.Path))
	}

	snap := m.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "total: %d workloads, %d errors\n", snap.OpsTotal, snap.ErrorsTotal)
	return nil
}

// journalRun appends a snapshot of the completed run to the configured journal.
func journalRun(cfg *config.Config, runID string) error {
	mode, err := cfg.JournalSyncMode()
	if err != nil {
		return err
	}

	j, err := journal.Open(cfg.Journal.Path, journal.Config{SyncMode: mode})
	if err != nil {
		return err
	}

	if err := journal.AppendSnapshot(j, "bench-runs", []string{runID}); err != nil {
		j.Close()
		return err
	}
	return j.Close()
}

func benchStack(items, workers int) (int, error) {
	s := stack.New[int]()
	forEachWorker(workers, items, func(i int) {
		s.Push(i)
	})
	for !s.IsEmpty() {
		if _, err := s.Pop(); err != nil {
			return 0, err
		}
	}
	return items * 2, nil
}

func benchQueue(items, workers int) (int, error) {
	q := queue.New[int]()
	forEachWorker(workers, items, func(i int) {
		q.Enqueue(i)
	})
	for !q.IsEmpty() {
		if _, err := q.Dequeue(); err != nil {
			return 0, err
		}
	}
	return items * 2, nil
}

func benchDeque(items, workers int) (int, error) {
	d := deque.New[int]()
	forEachWorker(workers, items, func(i int) {
		if i%2 == 0 {
			d.PushBack(i)
		} else {
			d.PushFront(i)
		}
	})
	for !d.IsEmpty() {
		if _, err := d.PopFront(); err != nil {
			return 0, err
		}
	}
	return items * 2, nil
}

func benchList(items, workers int) (int, error) {
	l := list.New[int]()
	forEachWorker(workers, items, func(i int) {
		l.PushBack(i)
	})
	for !l.IsEmpty() {
		if _, err := l.PopFront(); err != nil {
			return 0, err
		}
	}
	return items * 2, nil
}

func benchSet(items, workers int) (int, error) {
	s := set.New[int]()
	forEachWorker(workers, items, func(i int) {
		s.Add(i)
	})
	for _, v := range s.Items() {
		s.Remove(v)
	}
	return items * 2, nil
}

func benchAVLTree(items, workers int) (int, error) {
	t := avltree.New[int, int]()
	forEachWorker(workers, items, func(i int) {
		t.Put(i, i)
	})
	ops := items
	for _, k := range t.Keys() {
		if _, found := t.Get(k); !found {
			return 0, fmt.Errorf("key %d vanished", k)
		}
		ops++
	}
	return ops, nil
}

func benchSkipList(items, workers int) (int, error) {
	sl := skiplist.New[int, int]()
	forEachWorker(workers, items, func(i int) {
		sl.Put(i, i)
	})
	ops := items
	for _, k := range sl.Keys() {
		if _, found := sl.Get(k); !found {
			return 0, fmt.Errorf("key %d vanished", k)
		}
		ops++
	}
	return ops, nil
}

func benchFenwick(items, workers int) (int, error) {
	ft := fenwick.New[int64](items)
	forEachWorker(workers, items, func(i int) {
		ft.Add(i, int64(i))
	})
	if _, err := ft.PrefixSum(items); err != nil {
		return 0, err
	}
	return items + 1, nil
}

func benchSegTree(items, workers int) (int, error) {
	st := segtree.New(make([]int64, items), 0, func(a, b int64) int64 { return a + b })
	forEachWorker(workers, items, func(i int) {
		st.Update(i, int64(i))
	})
	if _, err := st.Query(0, items); err != nil {
		return 0, err
	}
	return items + 1, nil
}

func benchGraph(items, workers int) (int, error) {
	g := graph.New[int]()
	forEachWorker(workers, items, func(i int) {
		g.AddEdge(i, i+1, 1)
	})
	visited := 0
	if err := g.BFS(0, func(int) bool {
		visited++
		return true
	}); err != nil {
		return 0, err
	}
	return items + visited, nil
}

func benchHashRing(items, workers int) (int, error) {
	r := hashring.New()
	for i := 0; i < 8; i++ {
		if err := r.AddNode(fmt.Sprintf("node-%d", i)); err != nil {
			return 0, err
		}
	}
	var failed error
	var mu sync.Mutex
	forEachWorker(workers, items, func(i int) {
		if _, err := r.Locate(fmt.Sprintf("key-%d", i)); err != nil {
			mu.Lock()
			failed = err
			mu.Unlock()
		}
	})
	return items, failed
}

// forEachWorker splits [0, items) across workers goroutines.
func forEachWorker(workers, items int, fn func(i int)) {
	var wg sync.WaitGroup
	chunk := (items + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > items {
			hi = items
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
