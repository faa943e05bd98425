package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orderhub-backend/internal/http/response"
	"github.com/yungbote/orderhub-backend/internal/services"
)

type SummaryHandler struct {
	summaryService services.CustomerSummaryService
}

func NewSummaryHandler(summaryService services.CustomerSummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GET /api/orders/summary?limit=50
func (sh *SummaryHandler) TopCustomers(c *gin.Context) {
	limit := intQueryParam(c, "limit", services.DefaultSummaryLimit)
	if limit <= 0 {
		limit = 1
	}
	rows, err := sh.summaryService.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "summary_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"limit": limit,
		"rows":  rows,
	})
}
