package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/http/render"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
	"github.com/Ahmed-hessen/E-shop/internal/modules/search"
	"github.com/Ahmed-hessen/E-shop/internal/shared/apperr"
	"github.com/Ahmed-hessen/E-shop/internal/shared/money"
	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/pages"
)

type Catalog interface {
	Products(ctx context.Context, in products.ListParams) ([]products.Product, error)
	Product(ctx context.Context, id string) (products.Product, error)
}

type StorefrontHandler struct {
	catalog  Catalog
	currency string
}

func NewStorefrontHandler(catalog Catalog, currency string) *StorefrontHandler {
	return &StorefrontHandler{catalog: catalog, currency: currency}
}

// Home lists products; category and searchTerm are passed through untouched.
func (h *StorefrontHandler) Home(c *gin.Context) {
	params := products.ListParams{
		Category:   c.Query("category"),
		SearchTerm: c.Query(search.Param),
	}
	items, err := h.catalog.Products(c.Request.Context(), params)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	cards := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		card := view.ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Price:    money.FormatPrice(p.PriceCents, h.currency),
			Category: p.Category,
			Brand:    p.Brand,
			InStock:  p.InStock,
		}
		if refs := p.ImageRefs(); len(refs) > 0 {
			card.ImageURL = refs[0]
		}
		cards = append(cards, card)
	}

	render.Component(c, http.StatusOK, pages.Home(
		render.Nav(c),
		middleware.GetFlash(c),
		view.StorefrontPage{Products: cards, Category: params.Category, SearchTerm: params.SearchTerm},
	))
}

// Search redirects to the listing for the submitted term. The form itself is
// rendered empty again on the next page.
func (h *StorefrontHandler) Search(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, search.TargetURL(c.PostForm(search.Param)))
}

func (h *StorefrontHandler) Product(c *gin.Context) {
	p, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if errors.Is(err, products.ErrNotFound) {
		middleware.Fail(c, apperr.New(apperr.NotFound, "Product not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	d := view.ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money.FormatPrice(p.PriceCents, h.currency),
		Category:    p.Category,
		Brand:       p.Brand,
		InStock:     p.InStock,
	}
	for _, img := range p.Images {
		if img.Image == "" {
			continue
		}
		d.Images = append(d.Images, view.ProductImage{Color: img.Color, ColorCode: img.ColorCode, URL: img.Image})
	}

	render.Component(c, http.StatusOK, pages.Product(render.Nav(c), middleware.GetFlash(c), d))
}
