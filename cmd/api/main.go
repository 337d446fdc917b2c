package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estoque/internal/config"
	"estoque/internal/httpx"
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

	// Engine: one owned store, services over it
	store := inventory.NewStore()
	if cfg.SeedDemoData {
		if err := inventory.Seed(store); err != nil {
			log.Fatal("seed", zap.Error(err))
		}
	}
	catalog := inventory.NewCatalog(store)
	ledger := inventory.NewLedger(store)
	orders := inventory.NewOrderBook(store)

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers, one per topic
	pCreated := kafkax.NewProducer(cfg.KafkaBrokers, inventory.TopicOrderCreated, 1024, log)
	pCreated.Start(ctx)
	pConfirmed := kafkax.NewProducer(cfg.KafkaBrokers, inventory.TopicOrderConfirmed, 1024, log)
	pConfirmed.Start(ctx)
	pMovement := kafkax.NewProducer(cfg.KafkaBrokers, inventory.TopicMovementRecorded, 1024, log)
	pMovement.Start(ctx)

	router := httpx.NewRouter()
	(&httpx.ProductsHandler{Catalog: catalog}).Register(router)
	(&httpx.OrdersHandler{
		Orders:            orders,
		ProducerCreated:   pCreated,
		ProducerConfirmed: pConfirmed,
		Redis:             rdb,
		Service:           cfg.ServiceName,
	}).Register(router)
	(&httpx.MovementsHandler{
		Ledger:   ledger,
		Catalog:  catalog,
		Producer: pMovement,
		Service:  cfg.ServiceName,
	}).Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	for _, p := range []*kafkax.Producer{pCreated, pConfirmed, pMovement} {
		p.Close()
	}
	for _, p := range []*kafkax.Producer{pCreated, pConfirmed, pMovement} {
		p.WaitClosed()
	}
}
