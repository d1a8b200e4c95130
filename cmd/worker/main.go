package main

import (
	"log"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"

	"questshare/internal/config"
	"questshare/internal/storage"
	"questshare/internal/worker"
)

func main() {
	cfg := config.Load()

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	processor := worker.NewProcessor(objStore)

	if err := srv.Run(processor.Handler()); err != nil {
		log.Fatalf("failed to start worker: %v", err)
	}
}
