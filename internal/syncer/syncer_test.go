package syncer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bartek5186/bb2feed/internal/catalog"
	conf "github.com/bartek5186/bb2feed/internal/config"
	"github.com/bartek5186/bb2feed/internal/db"
	_ "github.com/bartek5186/bb2feed/internal/marketplaces/manomano"
	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/bartek5186/bb2feed/internal/syncer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jedna kategoria, dwa produkty: jeden poprawny, jeden z błędnym EAN
type staticSource struct {
	taxErr error
	calls  int
}

func (s *staticSource) Taxonomies(context.Context) ([]catalog.Record, error) {
	s.calls++
	if s.taxErr != nil {
		return nil, s.taxErr
	}
	return []catalog.Record{{"id": json.Number("1"), "name": "Jardín"}}, nil
}

func (s *staticSource) Products(context.Context, int64) ([]catalog.Record, error) {
	base := func(id, sku, ean string) catalog.Record {
		return catalog.Record{
			"id": json.Number(id), "sku": sku, "ean13": ean, "condition": "NEW",
			"wholesalePrice": json.Number("10"), "weight": json.Number("1.5"),
			"width": json.Number("10"), "height": json.Number("10"), "depth": json.Number("10"),
		}
	}
	return []catalog.Record{
		base("10", "P10", "8400000000017"),
		base("11", "P11", "123"),
	}, nil
}

func (s *staticSource) Variations(context.Context, int64) ([]catalog.Record, error) {
	return nil, nil
}

func (s *staticSource) ProductStock(context.Context, int64) ([]catalog.Record, error) {
	return []catalog.Record{
		{"sku": "P10", "stocks": []any{map[string]any{"quantity": json.Number("10")}}},
		{"sku": "P11", "stocks": []any{map[string]any{"quantity": json.Number("10")}}},
	}, nil
}

func (s *staticSource) VariationStock(context.Context, int64) ([]catalog.Record, error) {
	return nil, errors.New("not available")
}

func (s *staticSource) Information(context.Context, int64, string) ([]catalog.Record, error) {
	return []catalog.Record{
		{"sku": "P10", "name": "Tubo da giardino", "description": "Tubo flessibile"},
		{"sku": "P11", "name": "Annaffiatoio", "description": ""},
	}, nil
}

func (s *staticSource) Images(context.Context, int64) ([]catalog.Record, error) {
	return []catalog.Record{
		{"id": json.Number("10"), "images": []any{map[string]any{"url": "https://img/10.jpg"}}},
	}, nil
}

func resolved(t *testing.T) *conf.Resolved {
	t.Helper()
	res, err := conf.Default().Resolve("manomano", "IT", "key")
	require.NoError(t, err)
	return res
}

func fixedSeed(v int64) func(time.Time) int64 {
	return func(time.Time) int64 { return v }
}

func TestRunOnce(t *testing.T) {
	out := t.TempDir()
	s, err := syncer.New(zerolog.Nop(), resolved(t), &staticSource{}, syncer.Options{
		OutputDir: out,
		Seed:      fixedSeed(99),
	})
	require.NoError(t, err)

	sum, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, sum.RunID)
	assert.EqualValues(t, 99, sum.Seed)
	assert.Equal(t, 2, sum.Stats.TotalProcessed)
	assert.Equal(t, 1, sum.Stats.Exported)
	assert.Equal(t, 1, sum.Stats.Rejections[pipeline.ReasonInvalidEAN])
	require.Len(t, sum.Files, 3)

	csvData, err := os.ReadFile(filepath.Join(out, "manomano_feed.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "8400000000017")
	assert.Contains(t, string(csvData), "Tubo da giardino")
	assert.Contains(t, string(csvData), "https://img/10.jpg")

	var info map[string]any
	raw, err := os.ReadFile(filepath.Join(out, "manomano_feed_info.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &info))
	assert.Equal(t, sum.RunID, info["run_id"])
	assert.EqualValues(t, 99, info["random_seed"])
}

func TestRunOnceTaxonomyFailureStillExports(t *testing.T) {
	out := t.TempDir()
	s, err := syncer.New(zerolog.Nop(), resolved(t), &staticSource{taxErr: errors.New("down")}, syncer.Options{
		OutputDir: out,
		Seed:      fixedSeed(1),
	})
	require.NoError(t, err)

	sum, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Stats.Exported)

	data, err := os.ReadFile(filepath.Join(out, "manomano_feed.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "sku,ean,title"))
	assert.Equal(t, 1, strings.Count(string(data), "\n"))
}

func TestRunOnceCancelled(t *testing.T) {
	s, err := syncer.New(zerolog.Nop(), resolved(t), &staticSource{}, syncer.Options{OutputDir: t.TempDir()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.RunOnce(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunOnceWithStore(t *testing.T) {
	h, err := db.Open("sqlite", filepath.Join(t.TempDir(), "feed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	require.NoError(t, h.Migrate())

	s, err := syncer.New(zerolog.Nop(), resolved(t), &staticSource{}, syncer.Options{
		OutputDir: t.TempDir(),
		Seed:      fixedSeed(5),
		Store:     h,
	})
	require.NoError(t, err)

	sum, err := s.RunOnce(context.Background())
	require.NoError(t, err)

	last, err := h.LastRun(context.Background(), "manomano")
	require.NoError(t, err)
	assert.Equal(t, sum.RunID, last.RunID)
	assert.Equal(t, 1, last.Exported)

	var rows []db.FeedRow
	require.NoError(t, h.DB.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "P10", rows[0].SKU)
}

func TestRunOnceComparesWithPreviousRun(t *testing.T) {
	h, err := db.Open("sqlite", filepath.Join(t.TempDir(), "feed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	require.NoError(t, h.Migrate())

	var buf bytes.Buffer
	s, err := syncer.New(zerolog.New(&buf), resolved(t), &staticSource{}, syncer.Options{
		OutputDir: t.TempDir(),
		Seed:      fixedSeed(5),
		Store:     h,
	})
	require.NoError(t, err)

	first, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no previous run in store")

	buf.Reset()
	_, err = s.RunOnce(context.Background())
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "compared with previous run")
	assert.Contains(t, out, `"previous_run_id":"`+first.RunID+`"`)
	assert.Contains(t, out, `"previous_exported":1`)
	assert.Contains(t, out, `"delta":0`)
}

func TestNewUnknownMarketplace(t *testing.T) {
	res := resolved(t)
	res.Marketplace = "nope"
	_, err := syncer.New(zerolog.Nop(), res, &staticSource{}, syncer.Options{})
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	src := &staticSource{}
	s, err := syncer.New(zerolog.Nop(), resolved(t), src, syncer.Options{
		OutputDir: t.TempDir(),
		Interval:  time.Hour,
		Seed:      fixedSeed(3),
	})
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())
	assert.Eventually(t, func() bool { return s.Runs() >= 1 }, 5*time.Second, 10*time.Millisecond)

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.EqualValues(t, 1, s.Runs())
}

func TestStartWithoutInterval(t *testing.T) {
	s, err := syncer.New(zerolog.Nop(), resolved(t), &staticSource{}, syncer.Options{OutputDir: t.TempDir()})
	require.NoError(t, err)
	assert.Error(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}
