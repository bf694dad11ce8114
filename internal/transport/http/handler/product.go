package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
	"github.com/JiyaDuseja/inventory-management/internal/metrics"
	"github.com/JiyaDuseja/inventory-management/internal/repository"
	"github.com/JiyaDuseja/inventory-management/internal/usecase"
	"github.com/gin-gonic/gin"
)

type productUsecaser interface {
	Create(ctx context.Context, input usecase.CreateProductInput) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id string, patch repository.ProductPatch) error
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	productUsecase productUsecaser
	logger         *slog.Logger
}

func NewProductHandler(productUsecase productUsecaser, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		logger:         logger.With("component", "product_handler"),
	}
}

// Quantity and price bind through required pointers: 0 is a legal value,
// only a genuinely absent field is a 400.
type createProductRequest struct {
	Name     string   `json:"name"     binding:"required"`
	Quantity *int64   `json:"quantity" binding:"required"`
	Price    *float64 `json:"price"    binding:"required"`
}

type updateProductRequest struct {
	Name     *string  `json:"name"`
	Quantity *int64   `json:"quantity"`
	Price    *float64 `json:"price"`
}

type productResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
	CreatedBy string  `json:"createdBy"`
	CreatedAt string  `json:"createdAt"`
}

// toProductResponse substitutes defaults for legacy records that predate
// createdBy/createdAt being recorded.
func toProductResponse(p *domain.Product) productResponse {
	createdBy := p.CreatedBy
	if createdBy == "" {
		createdBy = "Unknown"
	}
	createdAt := "N/A"
	if !p.CreatedAt.IsZero() {
		createdAt = p.CreatedAt.Format(time.RFC3339)
	}
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Quantity:  p.Quantity,
		Price:     p.Price,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), usecase.CreateProductInput{
		Name:      req.Name,
		Quantity:  *req.Quantity,
		Price:     *req.Price,
		CreatedBy: c.GetString("userID"),
	})
	if err != nil {
		metrics.ProductOpsTotal.WithLabelValues("create", "error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "create product", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.ProductOpsTotal.WithLabelValues("create", "ok").Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully!",
		"id":      product.ID,
	})
}

// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productUsecase.List(c.Request.Context())
	if err != nil {
		metrics.ProductOpsTotal.WithLabelValues("list", "error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "list products", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errFetchProducts})
		return
	}

	items := make([]productResponse, len(products))
	for i, p := range products {
		items[i] = toProductResponse(p)
	}

	metrics.ProductOpsTotal.WithLabelValues("list", "ok").Inc()
	c.JSON(http.StatusOK, items)
}

// PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.productUsecase.Update(c.Request.Context(), id, repository.ProductPatch{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.ProductOpsTotal.WithLabelValues("update", "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": errProductNotFound})
			return
		}
		metrics.ProductOpsTotal.WithLabelValues("update", "error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "update product", "product_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errUpdateProduct})
		return
	}

	metrics.ProductOpsTotal.WithLabelValues("update", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully!"})
}

// DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.productUsecase.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			metrics.ProductOpsTotal.WithLabelValues("delete", "not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": errProductNotFound})
			return
		}
		metrics.ProductOpsTotal.WithLabelValues("delete", "error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "delete product", "product_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errDeleteProduct})
		return
	}

	metrics.ProductOpsTotal.WithLabelValues("delete", "ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}
