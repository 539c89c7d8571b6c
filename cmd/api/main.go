package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecokart/internal/client"
	"ecokart/internal/config"
	"ecokart/internal/repository"
	"ecokart/internal/seed"
	"ecokart/internal/server"
	"ecokart/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
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

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db = client.InitMysqlClient(cfg.DatabaseURL)
	} else {
		db = client.InitSqliteClient(cfg.SQLitePath)
	}

	if cfg.SeedData {
		if err := seed.Apply(db); err != nil {
			log.Fatal("seed data:", err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	contributionRepo := repository.NewContributionRepository(db)

	services := server.Services{
		User:     service.NewUserService(userRepo),
		Catalog:  service.NewCatalogService(productRepo, categoryRepo),
		Cart:     service.NewCartService(db, cartRepo, productRepo),
		Checkout: service.NewCheckoutService(db, cartRepo, orderRepo, userRepo, companyRepo, contributionRepo),
		Order:    service.NewOrderService(orderRepo),
		Rewards:  service.NewRewardsService(db, userRepo),
		Seller:   service.NewSellerService(sellerRepo, productRepo, orderRepo),
		Company:  service.NewCompanyService(db, companyRepo, userRepo),
		Stats:    service.NewStatsService(db, userRepo, contributionRepo),
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(cfg.JWT.Secret, services)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
