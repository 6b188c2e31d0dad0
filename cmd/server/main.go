package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/bilaLBOOS8/foodieMeknes/internal/config"
	httpctl "github.com/bilaLBOOS8/foodieMeknes/internal/controllers/http"
	"github.com/bilaLBOOS8/foodieMeknes/internal/infra/mysql"
	"github.com/bilaLBOOS8/foodieMeknes/internal/infra/rabbitmq"
	"github.com/bilaLBOOS8/foodieMeknes/internal/repository"
	"github.com/bilaLBOOS8/foodieMeknes/internal/repository/jsonfile"
	mysqlrepo "github.com/bilaLBOOS8/foodieMeknes/internal/repository/mysql"
	"github.com/bilaLBOOS8/foodieMeknes/internal/services"
)

func main() {
	cfg := config.FromEnv()

	var store repository.Store
	if cfg.MySQLHost != "" {
		db, err := mysql.New(cfg)
		if err != nil {
			log.Fatalf("db: connect: %v", err)
		}
		store = mysqlrepo.NewStore(db)
		log.Printf("Using MySQL backend at %s", cfg.MySQLHost)
	} else {
		store = jsonfile.Open(cfg.DataFile)
		log.Printf("Using JSON file backend at %s", cfg.DataFile)
	}

	var publisher rabbitmq.PublisherInterface
	if cfg.RabbitMQURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	catalog := services.NewCatalogService(store)
	if cfg.RedisAddr != "" {
		catalog.SetRedisClient(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	orders := services.NewOrderService(store, publisher)
	auth := &services.AuthService{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		JWTSecret:     cfg.JWTSecret,
	}

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Fatalf("uploads dir: %v", err)
	}

	handler := httpctl.NewHandler(catalog, orders, auth, cfg.UploadsDir)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.Printf("Starting FoodieMeknes backend on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
