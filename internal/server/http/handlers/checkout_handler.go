package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/server/http/dto"
)

// CheckoutHandler turns cart submissions into orders.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Process handles POST /checkout/process.
func (h *CheckoutHandler) Process(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: "malformed checkout payload"})
		return
	}

	submission := model.CheckoutSubmission{
		Name:            req.Name,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
		Lines:           make([]model.CheckoutLine, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		submission.Lines = append(submission.Lines, model.CheckoutLine{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.facade.Checkout(c.Request.Context(), userID, submission)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Status: "error", Message: "authentication required"})
		case errors.Is(err, domainErrors.ErrEmptyCart), errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: err.Error()})
		case errors.Is(err, domainErrors.ErrPaymentGateway):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: "payment gateway rejected the transaction"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Status: "error", Message: "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Status:    "success",
		SnapToken: order.SnapToken,
		OrderID:   order.ID,
	})
}
