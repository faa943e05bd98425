package main

import (
	"fmt"
	"os"

	"github.com/yungbote/orderhub-backend/internal/data/db"
	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	httpapi "github.com/yungbote/orderhub-backend/internal/http"
	"github.com/yungbote/orderhub-backend/internal/http/handlers"
	"github.com/yungbote/orderhub-backend/internal/platform/envutil"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
	"github.com/yungbote/orderhub-backend/internal/services"
)

func main() {
	// Logger
	logMode := envutil.Str("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	thePG := postgresService.DB()
	if err := db.AutoMigrateAll(thePG); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}

	// Repos
	log.Info("Setting up repos from main...")
	customerRepo := orders.NewCustomerRepo(thePG, log)
	orderRepo := orders.NewOrderRepo(thePG, log)
	orderItemRepo := orders.NewOrderItemRepo(thePG, log)
	seedRunRepo := orders.NewSeedRunRepo(thePG, log)

	// Services
	log.Info("Setting up services from main...")
	orderQueryService := services.NewOrderQueryService(thePG, log, orderRepo)
	summaryService := services.NewCustomerSummaryService(thePG, log, orderRepo)
	lifecycleService := services.NewOrderLifecycleService(thePG, log, customerRepo, orderRepo, orderItemRepo)
	customerService := services.NewCustomerService(thePG, log, customerRepo)
	seedService := services.NewSeedService(thePG, log, customerRepo, orderRepo, orderItemRepo, seedRunRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	orderHandler := handlers.NewOrderHandler(orderQueryService, lifecycleService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	seedHandler := handlers.NewSeedHandler(seedService)
	healthHandler := handlers.NewHealthHandler()

	// Router
	log.Info("Setting up router from main...")
	enableSeed := envutil.Int("ENABLE_DEV_SEED", 0) == 1
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Log:             log,
		OrderHandler:    orderHandler,
		CustomerHandler: customerHandler,
		SummaryHandler:  summaryHandler,
		SeedHandler:     seedHandler,
		HealthHandler:   healthHandler,
		EnableSeed:      enableSeed,
	})

	port := envutil.Str("HTTP_PORT", "8080")
	log.Info("Server listening", "port", port, "dev_seed_enabled", enableSeed)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
