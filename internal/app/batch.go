package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"rise/internal/config"
)

// Batch renders several seeds in parallel. Each seed owns its own stream
// and canvas, so frames are identical to rendering them one at a time.
type Batch struct {
	Config  *config.Config
	Seeds   []int64
	Workers int
	// Dir receives rise-<seed>.png files. Empty renders without writing.
	Dir    string
	Record bool
}

// RenderBatch runs b and returns the results ordered by seed. The first
// error cancels the remaining jobs.
func RenderBatch(ctx context.Context, b Batch, log *slog.Logger) ([]Result, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, max(len(b.Seeds), 1))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		res Result
		err error
	}
	jobs := make(chan int64)
	results := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				job := Job{Config: b.Config, Seed: seed, Record: b.Record}
				if b.Dir != "" {
					job.Output = filepath.Join(b.Dir, DefaultOutput(seed))
				}
				res, err := Render(ctx, job, log)
				results <- outcome{res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range b.Seeds {
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	var (
		all      []Result
		firstErr error
	)
	for out := range results {
		if out.err != nil {
			if firstErr == nil {
				firstErr = out.err
				cancel()
			}
			continue
		}
		all = append(all, out.res)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all, nil
}
