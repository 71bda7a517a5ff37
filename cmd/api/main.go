package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/application/service"
	"github.com/restobill/restobill-api/internal/config"
	"github.com/restobill/restobill-api/internal/infrastructure/database"
	"github.com/restobill/restobill-api/internal/infrastructure/repository"
	"github.com/restobill/restobill-api/internal/presentation/http/handler"
	"github.com/restobill/restobill-api/internal/presentation/http/routes"
	"github.com/restobill/restobill-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()
	config.ConfigureLogger(&cfg.App)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	restaurantRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	billRepo := repository.NewBillRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.Device,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	restaurantService := service.NewRestaurantService(restaurantRepo)
	dishService := service.NewDishService(dishRepo)
	billService := service.NewBillService(billRepo, dishRepo, restaurantRepo)
	receiptService := service.NewReceiptService(billRepo, restaurantRepo, thermalPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Restaurant: handler.NewRestaurantHandler(restaurantService),
		Dish:       handler.NewDishHandler(dishService),
		Bill:       handler.NewBillHandler(billService, receiptService),
		Printer:    handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
