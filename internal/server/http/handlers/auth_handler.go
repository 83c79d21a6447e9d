package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/server/http/dto"
	"github.com/rizkypra/storefront/internal/server/http/middleware"
)

// AuthHandler processes registration, login and user administration.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Register(c.Request.Context(), model.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusUnauthorized)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logging
// out only clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.Status(http.StatusOK)
}

// Users handles GET /api/users.
func (h *AuthHandler) Users(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, dto.UserResponse{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Phone:   u.Phone,
			Address: u.Address,
			Role:    string(u.Role),
		})
	}
	c.JSON(http.StatusOK, response)
}

// DeleteUser handles DELETE /api/users/:id.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
