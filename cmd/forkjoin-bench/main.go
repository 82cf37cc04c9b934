// Command forkjoin-bench exercises the reducers and the fork-join sort on
// random data and reports timings.
//
// It finds the maximum and minimum of a random array with their indices,
// sorts the array in parallel, checks the extrema again, and then compares a
// sequential loop that fills a slice with random numbers against the parallel
// collection reducer for a series of sizes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/exascience/forkjoin/reduce"
	"github.com/exascience/forkjoin/sequential"
	"github.com/exascience/forkjoin/sort"
)

var collectSizes = []int{1000000, 100000, 10000, 1000, 500, 100, 50, 10}

type config struct {
	workers int
	size    int
	limit   int
	grain   int
	seed    int64
}

func parseConfig(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("forkjoin-bench", flag.ContinueOnError)
	fs.IntVar(&cfg.workers, "nworkers", 4, "number of worker threads (GOMAXPROCS)")
	fs.IntVar(&cfg.size, "size", 100000, "number of elements to sort")
	fs.IntVar(&cfg.limit, "limit", 25000, "random elements are drawn from [1, limit]")
	fs.IntVar(&cfg.grain, "grain", 0, "partitions below this size are sorted without spawning (0 spawns at every level)")
	fs.Int64Var(&cfg.seed, "seed", time.Now().UnixNano(), "random seed")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	switch {
	case cfg.workers < 1:
		return cfg, fmt.Errorf("invalid number of workers: %v", cfg.workers)
	case cfg.size < 0:
		return cfg, fmt.Errorf("invalid size: %v", cfg.size)
	case cfg.limit < 1:
		return cfg, fmt.Errorf("invalid limit: %v", cfg.limit)
	}
	return cfg, nil
}

func reportExtrema(w io.Writer, s []int) error {
	maxValue, maxIndex, err := reduce.Max(s)
	if err != nil {
		return err
	}
	minValue, minIndex, err := reduce.Min(s)
	if err != nil {
		return err
	}
	if err := crossCheck(s, maxValue, maxIndex, minValue, minIndex); err != nil {
		return err
	}
	fmt.Fprintf(w, "Maximal element = %d has index = %d\n", maxValue, maxIndex)
	fmt.Fprintf(w, "Minimal element = %d has index = %d\n", minValue, minIndex)
	return nil
}

// crossCheck verifies the reduced extrema against a sequential scan of a
// float64 copy of s.
func crossCheck(s []int, maxValue, maxIndex, minValue, minIndex int) error {
	f := make([]float64, len(s))
	for i, v := range s {
		f[i] = float64(v)
	}
	if i := floats.MaxIdx(f); i != maxIndex || f[i] != float64(maxValue) {
		return fmt.Errorf("maximum mismatch: reduced %v at %v, scanned %v at %v", maxValue, maxIndex, f[i], i)
	}
	if i := floats.MinIdx(f); i != minIndex || f[i] != float64(minValue) {
		return fmt.Errorf("minimum mismatch: reduced %v at %v, scanned %v at %v", minValue, minIndex, f[i], i)
	}
	return nil
}

func compareLoops(w io.Writer, size int) {
	fmt.Fprintf(w, "\nNumber elements: %d\n", size)

	start := time.Now()
	var vec []int
	sequential.For(0, size, func(int) {
		vec = append(vec, rand.Intn(20000)+1)
	})
	fmt.Fprintf(w, "Cycle time for is: \t%f seconds\n", time.Since(start).Seconds())

	start = time.Now()
	collection := reduce.Collect(0, size, 0, func(int) int {
		return rand.Intn(20000) + 1
	})
	fmt.Fprintf(w, "Cycle time parallel for is: %f seconds\n", time.Since(start).Seconds())

	if len(collection) != len(vec) {
		panic(fmt.Sprintf("collected %v elements instead of %v", len(collection), len(vec)))
	}
}

func run(cfg config, sizes []int, w io.Writer) error {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(cfg.workers))

	rnd := rand.New(rand.NewSource(cfg.seed))
	s := make([]int, cfg.size)
	sequential.For(0, len(s), func(i int) {
		s[i] = rnd.Intn(cfg.limit) + 1
	})

	fmt.Fprintln(w, "Before sort:")
	if err := reportExtrema(w, s); err != nil {
		return err
	}

	start := time.Now()
	if cfg.grain > 0 {
		sort.SortGrain(s, cfg.grain)
	} else {
		sort.Sort(s)
	}
	fmt.Fprintf(w, "\nDuration parallel sort for %d elements is: %f seconds\n", len(s), time.Since(start).Seconds())
	if !sort.IsSorted(s) {
		return errors.New("parallel sort produced unsorted output")
	}

	fmt.Fprintln(w, "\nAfter sort:")
	if err := reportExtrema(w, s); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nTime array filling:")
	for _, size := range sizes {
		compareLoops(w, size)
	}
	return nil
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	slog.Debug("starting", "nworkers", cfg.workers, "size", cfg.size, "seed", cfg.seed)
	if err := run(cfg, collectSizes, os.Stdout); err != nil {
		slog.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}
