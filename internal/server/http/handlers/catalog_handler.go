package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/rizkypra/storefront/internal/domain/errors"
	"github.com/rizkypra/storefront/internal/domain/model"
	"github.com/rizkypra/storefront/internal/server/http/dto"
)

// CatalogHandler manages products and categories.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	categoryID, _ := strconv.ParseInt(c.Query("category"), 10, 64)
	page := queryPage(c)

	products, total, err := h.facade.Products(c.Request.Context(), c.Query("search"), categoryID, page)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Total:    total,
		Page:     page,
	}
	for _, p := range products {
		response.Products = append(response.Products, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), model.Product{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
	})
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*created))
}

// UpdateProduct handles PUT /api/products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateProduct(c.Request.Context(), model.Product{
		ID:         id,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
		Image:      req.Image,
	})
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CategoryResponse{ID: created.ID, Name: created.Name})
}

// UpdateCategory handles PUT /api/categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateCategory(c.Request.Context(), id, req.Name); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteCategory handles DELETE /api/categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Status: "error", Message: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Name:         p.Name,
		Price:        p.Price,
		Image:        p.Image,
	}
}
