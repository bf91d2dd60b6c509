package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"jobmatch-engine/internal/catalog"
	"jobmatch-engine/internal/config"
	"jobmatch-engine/internal/httpapi"
	"jobmatch-engine/internal/logger"
	"jobmatch-engine/internal/rank"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Fatal().Err(err).Msg("load .env failed")
	}

	defaultCfgPath := pflag.String("config", filepath.Join("config", "config.yml"), "default config copied into the data dir on first run")
	dataDirFlag := pflag.String("data-dir", "", "engine data dir (overrides "+config.EnvDataDir+")")
	pflag.Parse()

	// Engine data dir: flag, then env, else local folder.
	dataDir := *dataDirFlag
	if dataDir == "" {
		dataDir = os.Getenv(config.EnvDataDir)
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logger.Fatal().Err(err).Str("data_dir", dataDir).Msg("create data dir failed")
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, *defaultCfgPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("config bootstrap failed")
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", userCfgPath).Msg("config load failed")
	}
	config.ApplyEnv(&cfg)
	cfg.App.DataDir = dataDir

	cfg, vr := config.NormalizeAndValidate(cfg)
	logger.Init(cfg.Logger)
	log := logger.Component("engine")
	for _, w := range vr.Warnings {
		log.Warn().Str("path", userCfgPath).Msg(w)
	}
	if err := vr.Err(); err != nil {
		log.Fatal().Err(err).Str("path", userCfgPath).Msg("invalid config")
	}

	fl, ok, err := lockDataDir(dataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("lock data dir failed")
	}
	if !ok {
		log.Fatal().Str("data_dir", dataDir).Msg("another engine is already running for this data dir")
	}
	defer func() { _ = fl.Unlock() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.FromSources(ctx, catalog.Sources{
		Builtin:    cfg.Catalog.BuiltinSeed,
		SeedPath:   cfg.Catalog.SeedPath,
		SQLitePath: cfg.Catalog.SQLitePath,
	}, logger.Component("catalog"))
	if err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}

	weights, err := rank.ParseWeights(cfg.Matching.Weights)
	if err != nil {
		log.Fatal().Err(err).Msg("weights invalid")
	}
	matcher := rank.NewMatcher(cat,
		rank.WithWeights(weights),
		rank.WithSynonyms(rank.NewSynonyms(cfg.Matching.TitleSynonyms)),
		rank.WithParallelism(cfg.Matching.Parallelism),
		rank.WithDefaultLimit(cfg.Matching.DefaultLimit),
		rank.WithLogger(logger.Logger),
	)

	deps := httpapi.Deps{
		Catalog:        cat,
		Matcher:        matcher,
		Log:            logger.Component("http"),
		UserCfgPath:    userCfgPath,
		PersistWeights: cfg.Matching.PersistWeights,
	}
	if cfg.HTTP.RatePerSec > 0 {
		deps.Limiter = httpapi.NewClientLimiter(cfg.HTTP.RatePerSec, cfg.HTTP.Burst)
	}

	token := os.Getenv("JOBMATCH_SHUTDOWN_TOKEN")
	if token == "" {
		if token, err = randomToken(32); err != nil {
			log.Fatal().Err(err).Msg("shutdown token failed")
		}
	}
	tokenPath, err := writeToken(dataDir, token)
	if err != nil {
		log.Fatal().Err(err).Msg("write shutdown token failed")
	}

	handler := httpapi.NewHandler(deps, httpapi.Route{
		Pattern: "/shutdown",
		Handler: shutdownHandler(token, stop),
	})

	ln, err := net.Listen("tcp", cfg.App.Addr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.App.Addr).Msg("listen failed")
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadHeaderTimeoutSeconds) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", "http://"+ln.Addr().String()).
			Int("jobs", cat.Len()).
			Str("config", userCfgPath).
			Str("token_file", tokenPath).
			Msg("engine listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	_ = os.Remove(tokenPath)
	log.Info().Msg("engine stopped")
}
