package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BoysInc/volair-dashboard-sub000/config"
	"github.com/BoysInc/volair-dashboard-sub000/internal/cache"
	"github.com/BoysInc/volair-dashboard-sub000/internal/kafka"
	"github.com/BoysInc/volair-dashboard-sub000/internal/notify"
	"github.com/BoysInc/volair-dashboard-sub000/internal/platform"
	"github.com/BoysInc/volair-dashboard-sub000/internal/service/flights"
	"github.com/BoysInc/volair-dashboard-sub000/internal/store"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Dashboard.FlightsCacheTTL)*time.Second)
	platformClient := platform.NewClient(cfg.Platform)
	flightService := flights.NewFlightService(cfg.Dashboard.OperatorID, platformClient, redisCache, store.NewFlightStore())

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	dispatcher := notify.NewDispatcher()

	go func() {
		if err := consumer.Consume(ctx, dispatcher.Dispatch); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	warmMinutes := cfg.Worker.CacheWarmMinutes
	if warmMinutes <= 0 {
		warmMinutes = 5
	}
	warmTicker := time.NewTicker(time.Duration(warmMinutes) * time.Minute)
	defer warmTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-warmTicker.C:
			// Keep the list and widget mirrors warm so the dashboard
			// stays responsive after cache invalidation.
			if _, err := flightService.List(ctx); err != nil {
				log.Printf("warm flights cache error: %v", err)
			}
			if _, err := flightService.Widgets(ctx); err != nil {
				log.Printf("warm widgets cache error: %v", err)
			}
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
