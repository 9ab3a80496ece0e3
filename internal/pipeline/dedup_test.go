package pipeline_test

import (
	"math/rand"
	"testing"

	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedup_FirstSeenWins(t *testing.T) {
	rows := []pipeline.OutputRow{
		{SKU: "A", EAN: "4006381333931"},
		{SKU: "B", EAN: "5901234123457"},
		{SKU: "C", EAN: "4006381333931"},
		{SKU: "D", EAN: "0000000000017"},
	}
	out, dropped := pipeline.Dedup(rows)
	require.Len(t, out, 3)
	assert.Equal(t, 1, dropped)
	assert.Equal(t, []string{"A", "B", "D"}, []string{out[0].SKU, out[1].SKU, out[2].SKU})
}

func TestDedup_Empty(t *testing.T) {
	out, dropped := pipeline.Dedup(nil)
	assert.Empty(t, out)
	assert.Zero(t, dropped)
}

func numberedRows(n int) []pipeline.OutputRow {
	rows := make([]pipeline.OutputRow, n)
	for i := range rows {
		rows[i] = pipeline.OutputRow{ProductID: int64(i + 1)}
	}
	return rows
}

func TestSample_ExactSizeNoDuplicates(t *testing.T) {
	rows := numberedRows(100)
	out := pipeline.Sample(rows, 10, rand.New(rand.NewSource(42)))
	require.Len(t, out, 10)

	seen := map[int64]bool{}
	for _, r := range out {
		assert.False(t, seen[r.ProductID], "duplicate %d", r.ProductID)
		seen[r.ProductID] = true
		assert.True(t, r.ProductID >= 1 && r.ProductID <= 100)
	}

	// wejście nietknięte
	for i, r := range rows {
		assert.Equal(t, int64(i+1), r.ProductID)
	}
}

func TestSample_SmallerSetUnchanged(t *testing.T) {
	rows := numberedRows(100)
	assert.Equal(t, rows, pipeline.Sample(rows, 1000, rand.New(rand.NewSource(1))))
	assert.Equal(t, rows, pipeline.Sample(rows, 0, rand.New(rand.NewSource(1))))
	assert.Equal(t, rows, pipeline.Sample(rows, 100, rand.New(rand.NewSource(1))))
}

func TestSample_ReproducibleWithSeed(t *testing.T) {
	rows := numberedRows(500)
	a := pipeline.Sample(rows, 25, rand.New(rand.NewSource(7)))
	b := pipeline.Sample(rows, 25, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}
