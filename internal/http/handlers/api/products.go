package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/http/validation"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
	"github.com/Ahmed-hessen/E-shop/internal/shared/apperr"
)

type Backend interface {
	SetInStock(ctx context.Context, id string, inStock bool) error
	Delete(ctx context.Context, id string) error
}

type Invalidator interface {
	Invalidate()
}

// ProductsAPI is the JSON backend behind the grid's stock and delete actions.
type ProductsAPI struct {
	backend Backend
	inv     Invalidator
}

func NewProductsAPI(backend Backend, inv Invalidator) *ProductsAPI {
	return &ProductsAPI{backend: backend, inv: inv}
}

type updateStockInput struct {
	ID      string `json:"id" binding:"required"`
	InStock *bool  `json:"inStock" binding:"required"`
}

// Update handles PUT /api/product with {"id": "...", "inStock": bool}.
func (h *ProductsAPI) Update(c *gin.Context) {
	var in updateStockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.New(apperr.Invalid, "Invalid request body.").WithFields(validation.FromBindError(err, &in)))
		return
	}

	if err := h.backend.SetInStock(c.Request.Context(), in.ID, *in.InStock); err != nil {
		middleware.Fail(c, mapErr(err))
		return
	}
	h.inv.Invalidate()

	c.JSON(http.StatusOK, gin.H{"id": in.ID, "inStock": *in.InStock})
}

// Delete handles DELETE /api/product/:id. Images are not touched here.
func (h *ProductsAPI) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.backend.Delete(c.Request.Context(), id); err != nil {
		middleware.Fail(c, mapErr(err))
		return
	}
	h.inv.Invalidate()

	c.JSON(http.StatusOK, gin.H{"id": id, "deleted": true})
}

func mapErr(err error) error {
	if errors.Is(err, products.ErrNotFound) {
		return apperr.New(apperr.NotFound, "Product not found.")
	}
	return apperr.Wrap(err)
}
