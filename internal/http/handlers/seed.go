package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orderhub-backend/internal/http/response"
	"github.com/yungbote/orderhub-backend/internal/services"
)

// SeedHandler exposes the bulk data generator. Development tooling only:
// deployments must not route it on production instances.
type SeedHandler struct {
	seedService services.SeedService
}

func NewSeedHandler(seedService services.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// POST /api/dev/seed
// body: { "customers": 100, "orders_per_customer": 5, "items_per_order": 3 }
//
// Missing or malformed counts fall back to the defaults instead of failing.
func (sh *SeedHandler) Seed(c *gin.Context) {
	var params services.SeedParams
	if err := c.ShouldBindJSON(&params); err != nil {
		params = services.SeedParams{}
	}

	result, err := sh.seedService.Seed(c.Request.Context(), params)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "seed_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"run_id":    result.RunID,
		"customers": result.CustomersCreated,
		"orders":    result.OrdersCreated,
		"items":     result.ItemsCreated,
	})
}
