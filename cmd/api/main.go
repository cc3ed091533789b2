package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-checkout/internal/client"
	"storefront-checkout/internal/config"
	"storefront-checkout/internal/gateway"
	"storefront-checkout/internal/middleware"
	"storefront-checkout/internal/realtime"
	"storefront-checkout/internal/repository"
	"storefront-checkout/internal/server"
	"storefront-checkout/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	initLogger(&cfg.Log)

	db, err := client.InitDB(&cfg.Database)
	if err != nil {
		log.Fatal("database init: ", err)
	}

	rdb, err := client.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("redis init: ", err)
	}

	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)

	if cfg.Checkout.SeedProducts {
		if err := productRepo.Seed(context.Background()); err != nil {
			log.Fatal("seed products: ", err)
		}
	}

	var gw gateway.PaymentGateway
	switch cfg.Payment.Provider {
	case "braintree":
		gw = gateway.NewBraintreeGateway(&cfg.Braintree)
	default:
		gw = gateway.NewStripeGateway(&cfg.Stripe)
	}

	publisher := realtime.NewRedisPublisher(rdb)

	notificationService := service.NewNotificationService(notificationRepo, userRepo, publisher)
	checkoutService := service.NewCheckoutService(
		cartRepo, orderRepo, productRepo,
		gw, notificationService,
		cfg.BaseURL, cfg.Payment.Currency, cfg.Checkout,
	)
	cartService := service.NewCartService(cartRepo, productRepo)
	orderService := service.NewOrderService(orderRepo)

	srv := server.NewServer(server.Deps{
		CheckoutService:     checkoutService,
		CartService:         cartService,
		OrderService:        orderService,
		NotificationService: notificationService,
		UserRepo:            userRepo,
		Counter:             middleware.NewRedisCounter(rdb),
		Config:              cfg,
	})

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	slog.Info("starting HTTP server", slog.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	slog.Info("signal received, starting graceful shutdown")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}

func initLogger(cfg *config.Log) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var slogHandler slog.Handler
	if cfg.Format == "text" {
		slogHandler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		slogHandler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(slogHandler))
}
