package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/http/response"
	"github.com/yungbote/orderhub-backend/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GET /api/customers
func (ch *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := ch.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "list_customers_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"results": customers})
}

// POST /api/customers
// body: { "name": "Alice", "email": "alice@example.com" }
func (ch *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	customer, err := ch.customerService.CreateCustomer(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "create_customer_failed", err)
		return
	}
	response.RespondCreated(c, customer)
}

// GET /api/customers/:id
func (ch *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := ch.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "customer_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "get_customer_failed", err)
		return
	}
	response.RespondOK(c, customer)
}

// DELETE /api/customers/:id
func (ch *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := ch.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.RespondError(c, http.StatusNotFound, "customer_not_found", err)
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "delete_customer_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": id})
}
