package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BoysInc/volair-dashboard-sub000/api"
	"github.com/BoysInc/volair-dashboard-sub000/config"
	"github.com/BoysInc/volair-dashboard-sub000/internal/bootstrap"
	"github.com/BoysInc/volair-dashboard-sub000/internal/cache"
	"github.com/BoysInc/volair-dashboard-sub000/internal/kafka"
	"github.com/BoysInc/volair-dashboard-sub000/internal/platform"
	"github.com/BoysInc/volair-dashboard-sub000/internal/repository"
	"github.com/BoysInc/volair-dashboard-sub000/internal/service/flightform"
	"github.com/BoysInc/volair-dashboard-sub000/internal/service/flights"
	"github.com/BoysInc/volair-dashboard-sub000/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Dashboard.FlightsCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	platformClient := platform.NewClient(cfg.Platform)
	flightStore := store.NewFlightStore()
	activityRepo := repository.NewActivityRepository(pool)

	flightService := flights.NewFlightService(cfg.Dashboard.OperatorID, platformClient, redisCache, flightStore)
	formManager := flightform.NewManager(
		cfg.Dashboard.OperatorID,
		cfg.Dashboard.OperatorTimezone,
		platformClient,
		flightStore,
		redisCache,
		producer,
		cfg.Kafka.FlightEventsTopic,
		flightform.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		flightform.WithActivityLog(activityRepo),
	)

	flightHandler := api.NewFlightHandler(cfg.Dashboard.OperatorID, flightService, formManager, platformClient)
	activityHandler := api.NewActivityHandler(cfg.Dashboard.OperatorID, activityRepo, cfg.Dashboard.ActivityPageSize)

	if err := bootstrap.Run(ctx, cfg, flightHandler, activityHandler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
