package main

import (
	"context"

	"github.com/rehanmiah/the-palace-v1-sub000/config"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/storage"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/worker"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("popularity-worker")
	defer reader.Close()

	store := storage.NewPopularityStore(db, rdb)
	consumer := worker.NewConsumer(reader, store)
	consumer.Start(context.Background())
}
