package statistics

import (
	"context"
	"testing"

	"github.com/lox/drawoffate/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounts(t *testing.T) {
	c := NewCounts(3)
	c.Add([]int{0, 1, 2})
	c.Add([]int{2, 1, 0})

	assert.Equal(t, 2, c.Trials)
	assert.Equal(t, 1, c.Cells[0][0])
	assert.Equal(t, 1, c.Cells[0][2])
	assert.Equal(t, 2, c.Cells[1][1])
	assert.InDelta(t, 2.0/3.0, c.Expected(), 1e-9)

	other := NewCounts(3)
	other.Add([]int{1, 0, 2})
	c.Merge(other)
	assert.Equal(t, 3, c.Trials)
	assert.Equal(t, 1, c.Cells[0][1])
}

func TestEmptyCounts(t *testing.T) {
	c := NewCounts(4)
	assert.Zero(t, c.ChiSquare())
	assert.Zero(t, c.MaxDeviation())
}

func TestCriticalValue(t *testing.T) {
	// table values for p=0.001
	tests := []struct {
		df   int
		want float64
	}{
		{1, 10.83},
		{4, 18.47},
		{9, 27.88},
		{81, 124.84},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, CriticalValue(tt.df), tt.want*0.05, "df=%d", tt.df)
	}
	assert.Zero(t, CriticalValue(0))
}

func TestDeckShuffleIsUniform(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10} {
		counts := Observe(n, 20000, DeckShuffle, randutil.New(int64(n)))
		report := NewReport(counts, 1)
		assert.True(t, report.Uniform(), "n=%d: %s", n, report)
	}
}

func TestBiasedShuffleIsDetected(t *testing.T) {
	identity := func(ids []int, _ randutil.Source) []int { return ids }

	report := NewReport(Observe(4, 1000, identity, randutil.New(1)), 1)
	assert.False(t, report.Uniform())
	assert.Contains(t, report.String(), "NOT uniform")
}

func TestRun(t *testing.T) {
	report, err := Run(context.Background(), 4, 10001, 4, 99, DeckShuffle)
	require.NoError(t, err)

	assert.Equal(t, 10001, report.Trials)
	assert.Equal(t, 4, report.Workers)
	assert.Equal(t, 9, report.DegreesOfFreedom)
	assert.True(t, report.Uniform(), report.String())

	for pos, row := range report.Counts.Cells {
		sum := 0
		for _, v := range row {
			sum += v
		}
		assert.Equal(t, 10001, sum, "position %d", pos)
	}
}

func TestRunSeededIsReproducible(t *testing.T) {
	a, err := Run(context.Background(), 3, 3000, 3, 7, DeckShuffle)
	require.NoError(t, err)
	b, err := Run(context.Background(), 3, 3000, 3, 7, DeckShuffle)
	require.NoError(t, err)
	assert.Equal(t, a.Counts.Cells, b.Counts.Cells)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := Run(context.Background(), 1, 100, 1, 1, DeckShuffle)
	assert.Error(t, err)

	_, err = Run(context.Background(), 3, 0, 1, 1, DeckShuffle)
	assert.Error(t, err)
}
