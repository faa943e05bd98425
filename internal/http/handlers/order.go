package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/http/response"
	"github.com/yungbote/orderhub-backend/internal/services"
)

const DefaultPageLimit = 25

type OrderHandler struct {
	queryService     services.OrderQueryService
	lifecycleService services.OrderLifecycleService
}

func NewOrderHandler(queryService services.OrderQueryService, lifecycleService services.OrderLifecycleService) *OrderHandler {
	return &OrderHandler{
		queryService:     queryService,
		lifecycleService: lifecycleService,
	}
}

// GET /api/orders?status=paid&email=alice&limit=25&offset=0
//
// The engine returns the full ordered match set plus count; slicing the
// page happens here, outside the engine.
func (oh *OrderHandler) ListOrders(c *gin.Context) {
	filter := orders.OrderFilter{
		Status:         c.Query("status"),
		EmailSubstring: c.Query("email"),
	}
	limit := intQueryParam(c, "limit", DefaultPageLimit)
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	offset := intQueryParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	results, total, err := oh.queryService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_orders_failed", err)
		return
	}

	page := results
	if offset >= len(page) {
		page = []*types.Order{}
	} else {
		page = page[offset:]
	}
	if len(page) > limit {
		page = page[:limit]
	}

	response.RespondOK(c, gin.H{
		"count":   total,
		"limit":   limit,
		"offset":  offset,
		"results": page,
	})
}

// GET /api/orders/:id
// Direct identity lookup: archived orders are still retrievable here.
func (oh *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := oh.queryService.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "order_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "get_order_failed", err)
		return
	}
	response.RespondOK(c, order)
}

// POST /api/orders
// body: { "customer_id": 1, "status": "draft" }
func (oh *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		CustomerID int64  `json:"customer_id"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	status := types.OrderStatusDraft
	if req.Status != "" {
		parsed, ok := types.ParseOrderStatus(req.Status)
		if !ok {
			response.RespondError(c, http.StatusBadRequest, "invalid_status", errors.New("unknown order status: "+req.Status))
			return
		}
		status = parsed
	}
	order, err := oh.lifecycleService.CreateOrder(c.Request.Context(), req.CustomerID, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "customer_not_found", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "create_order_failed", err)
		return
	}
	response.RespondCreated(c, order)
}

// POST /api/orders/:id/items
// body: { "items": [{ "sku": "SKU-1", "quantity": 2, "unit_price_cents": 499 }] }
func (oh *OrderHandler) AddItems(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Items []services.ItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	order, err := oh.lifecycleService.AddItems(c.Request.Context(), id, req.Items)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "order_not_found", err)
			return
		}
		response.RespondError(c, http.StatusBadRequest, "add_items_failed", err)
		return
	}
	response.RespondOK(c, order)
}

// POST /api/orders/:id/cancel
func (oh *OrderHandler) CancelOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := oh.lifecycleService.Cancel(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "order_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "cancel_order_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"id": order.ID, "status": order.Status})
}

// POST /api/orders/:id/archive
func (oh *OrderHandler) ArchiveOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := oh.lifecycleService.Archive(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "order_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "archive_order_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"id": order.ID, "is_archived": order.IsArchived})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return 0, false
	}
	return id, true
}

// intQueryParam falls back to def when the parameter is missing or not a
// number; bad paging input never fails the request.
func intQueryParam(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
