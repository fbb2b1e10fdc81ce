// Package statistics measures how evenly the shuffler spreads cards across
// table positions.
package statistics

import (
	"context"
	"fmt"
	"math"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/drawoffate/internal/deck"
	"github.com/lox/drawoffate/internal/randutil"
	"golang.org/x/sync/errgroup"
)

// z-score for a one-sided p-value of 0.001
const z999 = 3.090232

// Counts is a position x card contingency table: Cells[pos][id] is how many
// times card id landed at table position pos.
type Counts struct {
	N      int
	Trials int
	Cells  [][]int
}

// NewCounts creates an empty table for n cards
func NewCounts(n int) *Counts {
	cells := make([][]int, n)
	for i := range cells {
		cells[i] = make([]int, n)
	}
	return &Counts{N: n, Cells: cells}
}

// Add records one shuffled order of card ids
func (c *Counts) Add(order []int) {
	for pos, id := range order {
		c.Cells[pos][id]++
	}
	c.Trials++
}

// Merge adds other into c. Both tables must be for the same n.
func (c *Counts) Merge(other *Counts) {
	for pos := range c.Cells {
		for id := range c.Cells[pos] {
			c.Cells[pos][id] += other.Cells[pos][id]
		}
	}
	c.Trials += other.Trials
}

// Expected returns the expected count per cell for a uniform shuffle
func (c *Counts) Expected() float64 {
	if c.N == 0 {
		return 0
	}
	return float64(c.Trials) / float64(c.N)
}

// ChiSquare returns Pearson's statistic over all cells
func (c *Counts) ChiSquare() float64 {
	exp := c.Expected()
	if exp == 0 {
		return 0
	}
	var sum float64
	for _, row := range c.Cells {
		for _, obs := range row {
			d := float64(obs) - exp
			sum += d * d / exp
		}
	}
	return sum
}

// DegreesOfFreedom is (n-1)^2 since row and column totals are fixed
func (c *Counts) DegreesOfFreedom() int {
	return (c.N - 1) * (c.N - 1)
}

// MaxDeviation returns the largest relative distance of any cell from the
// expected count
func (c *Counts) MaxDeviation() float64 {
	exp := c.Expected()
	if exp == 0 {
		return 0
	}
	var worst float64
	for _, row := range c.Cells {
		for _, obs := range row {
			worst = math.Max(worst, math.Abs(float64(obs)-exp)/exp)
		}
	}
	return worst
}

// CriticalValue approximates the chi-square quantile at p=0.001 using the
// Wilson-Hilferty transformation
func CriticalValue(df int) float64 {
	if df <= 0 {
		return 0
	}
	k := float64(df)
	h := 2 / (9 * k)
	return k * math.Pow(1-h+z999*math.Sqrt(h), 3)
}

// Report summarises a uniformity run
type Report struct {
	N                int
	Trials           int
	Workers          int
	ChiSquare        float64
	DegreesOfFreedom int
	Critical         float64
	MaxDeviation     float64
	Counts           *Counts
}

// Uniform reports whether the statistic stays below the critical value
func (r *Report) Uniform() bool {
	return r.ChiSquare < r.Critical
}

// NewReport computes the statistics for counts
func NewReport(counts *Counts, workers int) *Report {
	df := counts.DegreesOfFreedom()
	return &Report{
		N:                counts.N,
		Trials:           counts.Trials,
		Workers:          workers,
		ChiSquare:        counts.ChiSquare(),
		DegreesOfFreedom: df,
		Critical:         CriticalValue(df),
		MaxDeviation:     counts.MaxDeviation(),
		Counts:           counts,
	}
}

// String renders the report as a short plain-text table
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cards=%d trials=%d workers=%d\n", r.N, r.Trials, r.Workers)
	fmt.Fprintf(&b, "chi-square=%.2f df=%d critical(p=0.001)=%.2f max-deviation=%.2f%%\n",
		r.ChiSquare, r.DegreesOfFreedom, r.Critical, r.MaxDeviation*100)
	verdict := "uniform"
	if !r.Uniform() {
		verdict = "NOT uniform"
	}
	fmt.Fprintf(&b, "verdict: %s\n", verdict)
	return b.String()
}

// ShuffleFunc returns an order of the ids 0..n-1
type ShuffleFunc func(ids []int, rng randutil.Source) []int

// DeckShuffle is the shuffler the game uses
func DeckShuffle(ids []int, rng randutil.Source) []int {
	return deck.Shuffle(ids, rng)
}

// Observe runs shuffle trials times on ids 0..n-1 and counts placements
func Observe(n, trials int, shuffle ShuffleFunc, rng randutil.Source) *Counts {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	counts := NewCounts(n)
	for range trials {
		counts.Add(shuffle(ids, rng))
	}
	return counts
}

// Run spreads trials across workers, each with an independent generator
// derived from seed (zero picks a random seed), and merges their counts.
func Run(ctx context.Context, n, trials, workers int, seed int64, shuffle ShuffleFunc) (*Report, error) {
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 cards, got %d", n)
	}
	if trials < 1 {
		return nil, fmt.Errorf("need at least 1 trial, got %d", trials)
	}
	workers = max(1, min(workers, trials))
	if seed == 0 {
		seed = rand.Int64()
	}
	master := randutil.New(seed)

	perWorker := trials / workers
	remainder := trials % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *Counts, workers)

	for w := range workers {
		workerTrials := perWorker
		if w < remainder {
			workerTrials++
		}
		workerSeed := master.Int64()

		g.Go(func() error {
			counts := Observe(n, workerTrials, shuffle, randutil.New(workerSeed))
			select {
			case results <- counts:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := NewCounts(n)
	for counts := range results {
		total.Merge(counts)
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("uniformity run: %w", err)
	}
	return NewReport(total, workers), nil
}
