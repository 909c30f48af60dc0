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

	"github.com/go-chi/chi/v5"

	"eudiwallet/internal/catalog/adapters/memory"
	"eudiwallet/internal/catalog/deferred/store"
	"eudiwallet/internal/catalog/handler"
	catalogmetrics "eudiwallet/internal/catalog/metrics"
	"eudiwallet/internal/catalog/models"
	"eudiwallet/internal/catalog/orchestrator"
	"eudiwallet/internal/catalog/ports"
	"eudiwallet/internal/platform/config"
	"eudiwallet/internal/platform/httpserver"
	"eudiwallet/internal/platform/i18n"
	"eudiwallet/internal/platform/logger"
	"eudiwallet/internal/platform/metrics"
	"eudiwallet/internal/platform/redis"
	"eudiwallet/pkg/platform/audit/publishers/kafka"
	auditmemory "eudiwallet/pkg/platform/audit/publishers/memory"
	"eudiwallet/pkg/platform/httputil"
)

const shutdownTimeout = 10 * time.Second

// main wires the catalog daemon. Business logic lives in internal/catalog.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	if err := run(cfg, log); err != nil {
		log.Error("catalogd stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	text, err := i18n.New(cfg.Locale)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	docs, err := loadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}
	engine := memory.NewController(docs)

	registry := metrics.NewRegistry()
	catalogMetrics := catalogmetrics.New(registry)

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	markers, err := markerStore(redisClient, log)
	if err != nil {
		return err
	}

	auditor, closeAudit, err := auditPublisher(ctx, cfg.Kafka, log)
	if err != nil {
		return err
	}
	defer closeAudit()

	catalog, err := orchestrator.New(engine, text,
		orchestrator.WithLogger(log),
		orchestrator.WithMetrics(catalogMetrics),
		orchestrator.WithAuditPublisher(auditor),
		orchestrator.WithMarkerStore(markers, cfg.WalletID),
		orchestrator.WithPollDelay(cfg.PollDelay),
		orchestrator.WithListener(func(e orchestrator.Event) {
			log.Debug("catalog event", "event", orchestrator.EventName(e))
		}),
	)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	defer catalog.Close()

	if _, err := catalog.Load(ctx); err != nil {
		log.Warn("initial catalog load failed", "error", err)
	}

	router := chi.NewRouter()
	handler.New(catalog, log).Register(router)
	router.Handle("/metrics", metrics.Handler(registry))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if redisClient != nil {
			if err := redisClient.Health(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	srv := httpserver.New(cfg.Addr, router)
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting catalogd", "addr", cfg.Addr, "wallet_id", cfg.WalletID, "locale", text.Language().String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down catalogd")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func loadSeed(path string) ([]models.Document, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	docs, err := memory.LoadSeed(f)
	if err != nil {
		return nil, fmt.Errorf("load seed file %s: %w", path, err)
	}
	return docs, nil
}

// markerStore keeps markers in Redis when configured, falling back to memory
// while Redis is unavailable.
func markerStore(client *redis.Client, log *slog.Logger) (ports.MarkerStore, error) {
	inMemory := store.NewInMemory()
	if client == nil {
		return inMemory, nil
	}
	fallback, err := store.NewFallback(store.NewRedis(client.Client), inMemory, store.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("build marker store: %w", err)
	}
	return fallback, nil
}

func auditPublisher(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger) (ports.AuditPublisher, func(), error) {
	if len(cfg.Brokers) == 0 {
		log.Info("kafka not configured, keeping audit events in memory", "capacity", cfg.MemoryCapacity)
		return auditmemory.NewPublisher(auditmemory.WithCapacity(cfg.MemoryCapacity)), func() {}, nil
	}
	publisher, err := kafka.New(cfg.Brokers, kafka.WithTopic(cfg.AuditTopic), kafka.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("build audit publisher: %w", err)
	}
	if err := publisher.EnsureTopic(ctx, 1, 1); err != nil {
		log.Warn("could not ensure audit topic", "topic", cfg.AuditTopic, "error", err)
	}
	return publisher, publisher.Close, nil
}
