package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"foods-backend/config"
	httpapi "foods-backend/food-svc/internal/api/http"
	"foods-backend/food-svc/internal/logger"
	"foods-backend/food-svc/internal/metrics"
	"foods-backend/food-svc/internal/service"
	"foods-backend/food-svc/internal/storage"

	"gorm.io/gorm"
)

const listenAddr = "127.0.0.1:3000"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	db := config.MustInitPostgres(cfg)
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	m := metrics.New()
	opts := []service.Option{service.WithLogger(log), service.WithObserver(m)}

	if cfg.RedisAddr != "" {
		rdb := config.MustInitRedis(cfg)
		defer rdb.Close()
		opts = append(opts, service.WithCache(storage.NewRedisCache(rdb, cfg.RedisTTL)))
		log.Info("food list cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.RedisTTL)
	}

	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg)
		defer writer.Close()
		opts = append(opts, service.WithPublisher(storage.NewKafkaPublisher(writer)))
		log.Info("food events enabled", "broker", cfg.KafkaBroker, "topic", cfg.KafkaTopic)
	}

	if cfg.MetricsAddr != "" {
		go func() {
			log.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, httpapi.NewMetricsRouter(m)); err != nil {
				log.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	app := newApp(db, log, m, opts...)
	if err := httpapi.StartServer(listenAddr, app, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func newApp(db *gorm.DB, log *slog.Logger, m *metrics.Metrics, opts ...service.Option) http.Handler {
	repo := storage.NewPostgresRepository(db)
	foodSvc := service.NewFoodService(repo, opts...)
	return httpapi.NewRouter(httpapi.NewHandler(foodSvc), log, m)
}
