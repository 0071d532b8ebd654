package generator

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"sudoku_engine_go/internal/types"
)

// ProgressReport is sent on the optional progress channel during batch
// generation.
type ProgressReport struct {
	Phase     string
	Progress  float64
	Message   string
	Completed bool
}

// GenerateBatch produces count puzzles of the given difficulty on a
// bounded worker pool. Job i derives its own Generator seeded with
// seed+i, so no grid is ever shared between goroutines and a fixed seed
// yields the same set of puzzles regardless of scheduling (only the
// slice order varies). A zero seed picks a time-based one; a zero
// worker count uses NumCPU. A non-nil progress channel must be buffered
// or drained by the caller, or the workers stall on it.
func GenerateBatch(count int, diff types.Difficulty, seed int64, workers int, progress chan<- ProgressReport) []*types.Puzzle {
	if count <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	jobs := make(chan int)
	results := make(chan *types.Puzzle, count)
	var produced int64
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				gen := New(seed + int64(job))
				for {
					puzzle, err := gen.Generate(diff)
					if err != nil {
						continue
					}
					results <- puzzle
					if progress != nil {
						n := atomic.AddInt64(&produced, 1)
						progress <- ProgressReport{
							Phase:     "generation",
							Progress:  float64(n) / float64(count),
							Message:   fmt.Sprintf("generated puzzle %d/%d", n, count),
							Completed: n == int64(count),
						}
					}
					break
				}
			}
		}()
	}

	go func() {
		for i := 0; i < count; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	puzzles := make([]*types.Puzzle, 0, count)
	for i := 0; i < count; i++ {
		puzzles = append(puzzles, <-results)
	}
	wg.Wait()
	return puzzles
}
