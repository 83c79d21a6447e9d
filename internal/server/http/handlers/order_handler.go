package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/server/http/dto"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// UpdatePayment handles POST /payments/update-status.
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: "malformed payment payload"})
		return
	}
	if strings.TrimSpace(req.OrderID) == "" {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: "order id is required"})
		return
	}

	err := h.facade.UpdatePaymentStatus(c.Request.Context(), req.OrderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Status: "error", Message: "order not found"})
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: "status transition not allowed"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Status: "error", Message: "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Manage handles GET /orders.
func (h *OrderHandler) Manage(c *gin.Context) {
	h.listPage(c, h.facade.ManageOrders)
}

// History handles GET /history-order.
func (h *OrderHandler) History(c *gin.Context) {
	h.listPage(c, h.facade.OrderHistory)
}

// UpdateStatus handles PATCH /orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	err := h.facade.SetOrderStatus(c.Request.Context(), id, req.Status, req.ResiCode)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrValidation), errors.Is(err, domainErrors.ErrTrackingRequired):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: err.Error()})
		case errors.Is(err, domainErrors.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: "status transition not allowed"})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *OrderHandler) listPage(c *gin.Context, list func(ctx context.Context, status, search string, page int) ([]model.Order, int, error)) {
	page := queryPage(c)
	orders, total, err := list(c.Request.Context(), c.Query("status"), c.Query("search"), page)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Total:  total,
		Page:   page,
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              order.ID,
		Code:            order.Code,
		UserName:        order.UserName,
		ShippingAddress: order.ShippingAddress,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		Notes:           order.Notes,
		SnapToken:       order.SnapToken,
		ResiCode:        order.ResiCode,
		CreatedAt:       order.CreatedAt,
	}
}
