// internal/syncer/syncer.go
package syncer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/bartek5186/bb2feed/internal/catalog"
	conf "github.com/bartek5186/bb2feed/internal/config"
	"github.com/bartek5186/bb2feed/internal/db"
	"github.com/bartek5186/bb2feed/internal/export"
	"github.com/bartek5186/bb2feed/internal/marketplaces"
	"github.com/bartek5186/bb2feed/internal/pipeline"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Options struct {
	OutputDir string
	Interval  time.Duration             // 0 = tylko RunOnce
	Seed      func(now time.Time) int64 // źródło ziarna, wołane przed każdym przebiegiem
	Store     *db.Handle                // nil = bez bazy
}

// Summary – wynik jednego przebiegu.
type Summary struct {
	RunID string
	Seed  int64
	Stats pipeline.Stats
	Files []string
}

type Syncer struct {
	log   zerolog.Logger // logowanie
	res   *conf.Resolved // konfiguracja przebiegu
	src   catalog.Source
	feed  marketplaces.Feed
	opt   Options
	now   func() time.Time
	newID func() string

	mu      sync.Mutex // ochrona sekcji krytycznych
	running bool       // czy pętla działa
	cancel  context.CancelFunc
	wg      sync.WaitGroup // śledzi goroutines
	runs    uint64         // licznik przebiegów
}

func New(log zerolog.Logger, res *conf.Resolved, src catalog.Source, opt Options) (*Syncer, error) {
	feed, err := marketplaces.Build(res.Marketplace, log, res.Feed)
	if err != nil {
		return nil, err
	}
	if opt.Seed == nil {
		opt.Seed = conf.ClockSeed
	}
	return &Syncer{
		log:   log.With().Str("marketplace", res.Marketplace).Str("market", res.Country).Logger(),
		res:   res,
		src:   src,
		feed:  feed,
		opt:   opt,
		now:   time.Now,
		newID: uuid.NewString,
	}, nil
}

// RunOnce: kategorie -> katalog -> pipeline -> pliki (+ baza).
// Błędy źródła są miękkie, błąd zwraca tylko przerwanie przez ctx i zapis wyników.
func (s *Syncer) RunOnce(ctx context.Context) (*Summary, error) {
	started := s.now()
	seed := s.opt.Seed(started)
	runID := s.newID()
	log := s.log.With().Str("run_id", runID).Int64("seed", seed).Logger()
	log.Info().Msg("run started")

	rng := rand.New(rand.NewSource(seed))

	cat := catalog.NewCollector(log, s.src, s.res.Selection).Collect(ctx, rng)
	if err := ctx.Err(); err != nil {
		log.Warn().Err(err).Msg("run aborted")
		return nil, err
	}

	result := pipeline.New(log, s.res.Rules, s.feed).Run(cat, rng)
	finished := s.now()

	rep := export.Report{
		RunID:       runID,
		StartedAt:   started,
		FinishedAt:  finished,
		Seed:        seed,
		Marketplace: s.res.Marketplace,
		Country:     s.res.Country,
		Language:    s.res.Market.Language,
		Currency:    s.res.Market.Currency,
		Rules:       s.res.Rules,
		Stats:       result.Stats,
	}
	files, err := export.WriteAll(s.opt.OutputDir, s.feed, rep, result.Rows)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	if s.opt.Store != nil {
		info := db.RunInfo{
			RunID:       runID,
			Marketplace: s.res.Marketplace,
			Country:     s.res.Country,
			Currency:    s.res.Market.Currency,
			Seed:        seed,
			StartedAt:   started,
			FinishedAt:  finished,
		}
		s.logPrevious(ctx, log, result.Stats.Exported)
		if err := s.opt.Store.SaveRun(ctx, info, result.Rows, result.Stats); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
	}

	log.Info().
		Int("exported", result.Stats.Exported).
		Strs("files", files).
		Dur("took", finished.Sub(started)).
		Msg("run finished")

	return &Summary{RunID: runID, Seed: seed, Stats: result.Stats, Files: files}, nil
}

// logPrevious porównuje wynik z poprzednim zapisanym przebiegiem tego marketplace.
func (s *Syncer) logPrevious(ctx context.Context, log zerolog.Logger, exported int) {
	prev, err := s.opt.Store.LastRun(ctx, s.res.Marketplace)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Info().Msg("no previous run in store")
	case err != nil:
		log.Warn().Err(err).Msg("previous run unavailable")
	default:
		log.Info().
			Str("previous_run_id", prev.RunID).
			Time("previous_finished_at", prev.FinishedAt).
			Int("previous_exported", prev.Exported).
			Int("delta", exported-prev.Exported).
			Msg("compared with previous run")
	}
}

// Start uruchamia pętlę: pierwszy przebieg od razu, kolejne co Interval.
func (s *Syncer) Start(ctx context.Context) error {
	if s.opt.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", s.opt.Interval)
	}
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	s.runs = 0
	s.wg.Add(1)
	s.mu.Unlock()

	s.log.Info().Dur("interval", s.opt.Interval).Msg("syncer: start")
	go s.loop(ctx)
	return nil
}

func (s *Syncer) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	s.log.Info().Msg("syncer: stop")
}

func (s *Syncer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Runs – ile przebiegów wykonała pętla od ostatniego Start.
func (s *Syncer) Runs() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runs
}

func (s *Syncer) loop(ctx context.Context) {
	defer s.wg.Done()

	// pierwszy strzał od razu
	s.tickOnce(ctx)

	ticker := time.NewTicker(s.opt.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("syncer: koniec pętli")
			return
		case <-ticker.C:
			s.tickOnce(ctx)
		}
	}
}

func (s *Syncer) tickOnce(ctx context.Context) {
	if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
		s.log.Error().Err(err).Msg("run failed")
	}
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
}
