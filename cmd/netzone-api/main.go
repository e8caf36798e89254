// Entry point; loads config, wires stores and services, starts the HTTP
// server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"netzone/internal/config"
	httptransport "netzone/internal/http"
	"netzone/internal/infra"
	"netzone/internal/modules/loyalty"
	"netzone/internal/modules/session"
	"netzone/internal/modules/station"
	"netzone/internal/modules/tariff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Development)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.PGDSN)
	if err != nil {
		logger.Fatal("postgres init", zap.Error(err))
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.RedisAddr)
	defer func() { _ = redisClient.Close() }()

	publisher, err := infra.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Fatal("rabbitmq init", zap.Error(err))
	}
	defer func() { _ = publisher.Close() }()

	// Prefer the admin-saved rate table; fall back to env defaults.
	tariffStore := tariff.NewStore(dbPool)
	rateTable := cfg.Tariff()
	if saved, ok, err := tariffStore.Load(ctx); err != nil {
		logger.Warn("tariff load failed, using defaults", zap.Error(err))
	} else if ok {
		rateTable = saved
	}
	rates := tariff.NewHolder(rateTable)

	registry := station.NewRegistry(station.DefaultCatalog())
	statusCache := station.NewCache(redisClient)

	paymentStore := session.NewStore(dbPool)
	sessionSvc := session.NewService(registry, rates, paymentStore, publisher, statusCache, logger)

	accountStore := loyalty.NewStore(dbPool)
	loyaltySvc := loyalty.NewService(accountStore, publisher)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Sessions:    sessionSvc,
		Loyalty:     loyaltySvc,
		Rates:       rates,
		Payments:    paymentStore,
		TariffStore: tariffStore,
		Log:         logger,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}
