package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"adledger/internal/adapter/cache"
	httpadapter "adledger/internal/adapter/http"
	"adledger/internal/adapter/kafka"
	"adledger/internal/adapter/memory"
	"adledger/internal/adapter/postgres"
	"adledger/internal/adapter/usecase"
	"adledger/internal/config"
	"adledger/internal/config/configs"
	"adledger/internal/core/port"
	"adledger/internal/db"
	"adledger/internal/metrics"
)

// stores groups the outbound ports backed by the selected store.
type stores struct {
	campaigns  port.CampaignRepository
	placements port.PlacementRepository
	stats      port.StatsRepository
	ledger     port.LedgerStore
	close      func()
}

// main is the entry point of the ad ledger. It loads configuration, opens
// the selected store (running migrations and seeding when asked), wires
// the optional Redis cache and Kafka publisher, then serves HTTP until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.NewHandler(os.Stdout)).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store init error", slog.String("store", cfg.Ledger.Store), slog.Any("error", err))
		return
	}
	defer st.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ledgerMetrics := metrics.NewLedger(reg)

	var placementCache port.PlacementCache
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedisPlacementCache(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.PlacementTTL)
		if err != nil {
			logger.Warn("redis unavailable, placement cache disabled", slog.Any("error", err))
		} else {
			defer rc.Close()
			placementCache = rc
		}
	}

	var publisher port.EventPublisher
	if cfg.Kafka.Enabled() {
		kp := kafka.NewEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer func() {
			if err := kp.Close(); err != nil {
				logger.Warn("kafka writer close error", slog.Any("error", err))
			}
		}()
		publisher = kp
	}

	campaigns := usecase.NewCampaignUseCase(st.campaigns, st.ledger, logger)
	placements := usecase.NewPlacementUseCase(st.placements, placementCache, ledgerMetrics, logger,
		cfg.Ledger.DefaultPlacementLimit, cfg.Ledger.MaxPlacementLimit)
	ledger := usecase.NewLedgerUseCase(st.ledger, st.stats, publisher, ledgerMetrics, logger)

	handler := httpadapter.NewHandler(campaigns, placements, ledger,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("store", cfg.Ledger.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.Ledger.Store == configs.StoreMemory {
		ms := memory.NewStore()
		loadMemory(ms, db.DemoData(time.Now()))
		logger.Info("memory store seeded with demo data")
		return &stores{campaigns: ms, placements: ms, stats: ms, ledger: ms, close: func() {}}, nil
	}

	if cfg.Psql.RunMigrations {
		if _, err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool, db.DemoData(time.Now())); err != nil {
			pool.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	repo := postgres.NewCampaignRepository(pool)
	return &stores{
		campaigns:  repo,
		placements: repo,
		stats:      repo,
		ledger:     postgres.NewLedgerStore(pool),
		close:      pool.Close,
	}, nil
}

func loadMemory(ms *memory.Store, ds db.Dataset) {
	for id, name := range ds.Provinces {
		ms.AddProvince(id, name)
	}
	for id, name := range ds.Categories {
		ms.AddCategory(id, name)
	}
	for _, o := range ds.Organizations {
		ms.AddOrganization(o)
	}
	for _, b := range ds.Businesses {
		ms.AddBusiness(b)
	}
	for _, c := range ds.Campaigns {
		ms.PutCampaign(c)
	}
}
