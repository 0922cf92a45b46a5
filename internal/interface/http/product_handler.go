package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventorylabs/product-catalog-api/internal/application"
	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	"github.com/inventorylabs/product-catalog-api/pkg/apperrors"
	"github.com/inventorylabs/product-catalog-api/pkg/response"
	"github.com/inventorylabs/product-catalog-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Category    string  `json:"category" binding:"required,max=100"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

type updateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
	Stock       *int    `json:"stock" binding:"omitempty"`
}

type deleteGroupRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// writeServiceError maps use-case error kinds to transport codes. Store
// errors stay opaque: the client sees a generic 500 while the details go to
// the log.
func (h *ProductHandler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsValidation(err):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case apperrors.IsNotFound(err):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		h.Logger.WithError(err).Error(fallback)
		response.Error[any](c, http.StatusInternalServerError, fallback, nil)
	}
}

// List GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.GetProducts(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "failed to fetch products")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": products}, "products", map[string]any{"count": len(products)})
}

// Get GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.Svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err, "failed to fetch product")
		return
	}
	if p == nil {
		response.Error[any](c, http.StatusNotFound, "Product not found", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": p}, "product", nil)
}

// Create POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.CreateProduct(c.Request.Context(), entity.CreateProductDTO{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		h.writeServiceError(c, err, "failed to create product")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"product": p}, "product created", nil)
}

// Update PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p, err := h.Svc.UpdateProduct(c.Request.Context(), c.Param("id"), entity.UpdateProductDTO{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		h.writeServiceError(c, err, "failed to update product")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"product": p}, "product updated", nil)
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err, "failed to delete product")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true}, "product deleted", nil)
}

// DeleteGroup POST /api/products/delete-group
func (h *ProductHandler) DeleteGroup(c *gin.Context) {
	var req deleteGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	deleted, err := h.Svc.DeleteProducts(c.Request.Context(), req.IDs)
	if err != nil {
		h.writeServiceError(c, err, "failed to delete products")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true, "deleted": deleted}, "products deleted", map[string]any{"requested": len(req.IDs)})
}
