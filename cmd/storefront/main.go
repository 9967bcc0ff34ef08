package main

import (
	"log"

	"github.com/rehanmiah/the-palace-v1-sub000/config"
	httpapi "github.com/rehanmiah/the-palace-v1-sub000/internal/api/http"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/cart"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/service"
	"github.com/rehanmiah/the-palace-v1-sub000/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter()
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	archive := storage.NewRedisCartArchive(rdb, config.CartArchiveTTL())
	carts := cart.NewManager(archive)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qrGen := service.DefaultQRGenerator{BaseURL: config.PublicBaseURL()}

	menuSvc := service.NewMenuService(repo)
	cartSvc := service.NewCartService(carts, repo)
	checkoutSvc := service.NewCheckoutService(carts, repo, publisher, qrGen)
	orderSvc := service.NewOrderService(repo, qrGen)

	handler := httpapi.NewHandler(menuSvc, cartSvc, checkoutSvc, orderSvc)

	httpapi.StartServer(config.HTTPAddr(), httpapi.NewRouter(handler))
}
