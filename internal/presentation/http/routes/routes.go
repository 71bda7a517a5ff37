package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restobill/restobill-api/internal/config"
	domainRepo "github.com/restobill/restobill-api/internal/domain/repository"
	"github.com/restobill/restobill-api/internal/presentation/http/handler"
	"github.com/restobill/restobill-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Restaurant *handler.RestaurantHandler
	Dish       *handler.DishHandler
	Bill       *handler.BillHandler
	Printer    *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Wrong method on a known path gets a structured 405 instead of 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"success": false,
			"message": "Method not allowed",
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerRestaurantRoutes(v1, h)
		registerDishRoutes(v1, h)
		registerBillRoutes(v1, h, deps)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerRestaurantRoutes(v1 *gin.RouterGroup, h *Handlers) {
	restaurant := v1.Group("/restaurant")
	{
		restaurant.GET("", h.Restaurant.Get)
		// The profile is a singleton; POST and PUT both upsert
		restaurant.POST("", h.Restaurant.Save)
		restaurant.PUT("", h.Restaurant.Save)
	}
}

func registerDishRoutes(v1 *gin.RouterGroup, h *Handlers) {
	dishes := v1.Group("/dishes")
	{
		dishes.GET("", h.Dish.List)
		dishes.POST("", h.Dish.Create)
		dishes.GET("/:id", h.Dish.Get)
		dishes.PUT("/:id", h.Dish.Update)
		dishes.DELETE("/:id", h.Dish.Delete)
	}
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	bills := v1.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		// Bill creation uses idempotency middleware to prevent duplicates
		bills.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Bill.Create)
		bills.POST("/preview", h.Bill.Preview)
		bills.GET("/export", h.Bill.Export)
		bills.GET("/:id", h.Bill.Get)
		bills.GET("/:id/pdf", h.Bill.PDF)
		bills.POST("/:id/print", h.Bill.Print)
	}
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	printerGroup := v1.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
	}
}
