package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/orderhub-backend/internal/http/handlers"
	httpMW "github.com/yungbote/orderhub-backend/internal/http/middleware"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	OrderHandler    *httpH.OrderHandler
	CustomerHandler *httpH.CustomerHandler
	SummaryHandler  *httpH.SummaryHandler
	SeedHandler     *httpH.SeedHandler

	HealthHandler *httpH.HealthHandler

	// EnableSeed keeps the dev-only seeding route off production routers.
	EnableSeed bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.OrderHandler != nil {
			api.GET("/orders", cfg.OrderHandler.ListOrders)
			api.POST("/orders", cfg.OrderHandler.CreateOrder)
			api.GET("/orders/:id", cfg.OrderHandler.GetOrder)
			api.POST("/orders/:id/items", cfg.OrderHandler.AddItems)
			api.POST("/orders/:id/cancel", cfg.OrderHandler.CancelOrder)
			api.POST("/orders/:id/archive", cfg.OrderHandler.ArchiveOrder)
		}

		if cfg.SummaryHandler != nil {
			api.GET("/orders/summary", cfg.SummaryHandler.TopCustomers)
		}

		if cfg.CustomerHandler != nil {
			api.GET("/customers", cfg.CustomerHandler.ListCustomers)
			api.POST("/customers", cfg.CustomerHandler.CreateCustomer)
			api.GET("/customers/:id", cfg.CustomerHandler.GetCustomer)
			api.DELETE("/customers/:id", cfg.CustomerHandler.DeleteCustomer)
		}

		if cfg.SeedHandler != nil && cfg.EnableSeed {
			api.POST("/dev/seed", cfg.SeedHandler.Seed)
		}
	}

	return r
}
