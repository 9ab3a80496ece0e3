package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bartek5186/bb2feed/internal/bigbuy"
	conf "github.com/bartek5186/bb2feed/internal/config"
	"github.com/bartek5186/bb2feed/internal/db"
	logs "github.com/bartek5186/bb2feed/internal/logs"
	_ "github.com/bartek5186/bb2feed/internal/marketplaces/kaufland" // rejestracja
	_ "github.com/bartek5186/bb2feed/internal/marketplaces/manomano"
	syncer "github.com/bartek5186/bb2feed/internal/syncer"
)

// wersję możesz nadpisać przez: -ldflags "-X 'main.ver=1.0.1'"
var ver = "1.0.0"

func main() {
	var (
		cfgPath     = flag.String("config", "config.json", "plik konfiguracyjny (tworzony, jeśli nie istnieje)")
		marketplace = flag.String("marketplace", "", "profil feedu: manomano | kaufland (domyślnie z configu)")
		market      = flag.String("market", "", "kod rynku, np. IT, DE, PL (domyślnie z configu)")
		outDir      = flag.String("out", "", "katalog wynikowy (domyślnie z configu)")
		seed        = flag.Int64("seed", -1, "stałe ziarno losowania, <0 = godzina + dzień*24")
		interval    = flag.Int("interval", -1, "powtarzaj co N minut, 0 = jeden przebieg (domyślnie z configu)")
		console     = flag.Bool("console", true, "logi także na stderr")
		debug       = flag.Bool("debug", false, "poziom debug")
	)
	flag.Parse()

	cfg, firstRun, err := conf.LoadOrCreate(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logs.New(cfg.LogPath, *console, *debug)
	log.Info().Str("version", ver).Msg("bb2feed start")
	if firstRun {
		log.Info().Msgf("Utworzono domyślną konfigurację: %s", *cfgPath)
	}

	if err := conf.LoadEnv(cfg.EnvFile); err != nil {
		log.Warn().Err(err).Msg(".env not loaded")
	}
	apiKey, err := conf.APIKey()
	if err != nil {
		log.Fatal().Err(err).Msg("missing credentials, nothing processed")
	}

	res, err := cfg.Resolve(*marketplace, *market, apiKey)
	if err != nil {
		log.Fatal().Err(err).Msg("config error")
	}

	if *seed >= 0 {
		s := *seed
		cfg.Seed = &s
	}
	if *interval >= 0 {
		cfg.IntervalMinutes = *interval
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}

	opt := syncer.Options{
		OutputDir: cfg.OutputDir,
		Interval:  cfg.Interval(),
		Seed:      cfg.SeedAt,
	}

	if cfg.Store.Driver != "" {
		dbh, err := db.Open(cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			log.Fatal().Err(err).Msg("DB open error")
		}
		defer dbh.Close()
		if err := dbh.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("DB migrate error")
		}
		log.Info().Str("driver", dbh.Driver).Msg("DB ready")
		opt.Store = dbh
	}

	client := bigbuy.New(log.With().Str("source", "bigbuy").Logger(), res.Source)
	s, err := syncer.New(log, res, client, opt)
	if err != nil {
		log.Fatal().Err(err).Msg("syncer init error")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if opt.Interval <= 0 {
		sum, err := s.RunOnce(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Warn().Msg("przerwano")
				return
			}
			log.Error().Err(err).Msg("run failed")
			os.Exit(1)
		}
		fmt.Printf("%s: %d products (%.1f%% accepted), seed %d\n",
			res.Marketplace, sum.Stats.Exported, sum.Stats.SuccessRate(), sum.Seed)
		for _, f := range sum.Files {
			fmt.Println("  ", f)
		}
		return
	}

	if err := s.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start error")
	}
	<-ctx.Done()
	s.Stop()
	// daj chwilę loggerowi na flush
	time.Sleep(50 * time.Millisecond)
}
