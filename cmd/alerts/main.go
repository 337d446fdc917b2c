package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estoque/internal/alerts"
	"estoque/internal/config"
	"estoque/internal/inventory"
	kafkax "estoque/internal/kafka"
	"estoque/internal/redisx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &alerts.Service{
		Redis:       rdb,
		Log:         log,
		ServiceName: cfg.ServiceName + "-alerts",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.AlertsGroup, inventory.TopicMovementRecorded, cfg.AlertsWorkers, log)

	go func() {
		log.Info("alerts consumer started",
			zap.String("group", cfg.AlertsGroup),
			zap.String("topic", inventory.TopicMovementRecorded),
			zap.Int("workers", cfg.AlertsWorkers),
		)
		if err := cons.Start(ctx, svc.HandleMovementRecorded); err != nil {
			log.Error("consumer exit", zap.Error(err))
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down consumer")
	cancel()
	time.Sleep(500 * time.Millisecond)
}
