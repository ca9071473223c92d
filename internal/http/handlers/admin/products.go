package admin

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/flash"
	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/http/render"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
	"github.com/Ahmed-hessen/E-shop/internal/shared/apperr"
	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/pages"
)

const gridPath = "/admin/manage-products"

type Catalog interface {
	Products(ctx context.Context, in products.ListParams) ([]products.Product, error)
	Product(ctx context.Context, id string) (products.Product, error)
}

type Actions interface {
	ToggleStock(ctx context.Context, n products.Notifier, id string, current bool) error
	Delete(ctx context.Context, n products.Notifier, id string, images []string, confirmed bool) products.DeleteResult
}

type ProductsHandler struct {
	catalog  Catalog
	actions  Actions
	flash    *flash.Codec
	currency string
}

func NewProductsHandler(catalog Catalog, actions Actions, flashCodec *flash.Codec, currency string) *ProductsHandler {
	return &ProductsHandler{catalog: catalog, actions: actions, flash: flashCodec, currency: currency}
}

func (h *ProductsHandler) List(c *gin.Context) {
	items, err := h.catalog.Products(c.Request.Context(), products.ListParams{})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	g := products.BuildGrid(items, products.GridParams{
		Page:     parseInt(c.Query("page"), 1),
		PageSize: parseInt(c.Query("size"), products.DefaultPageSize),
		Sort:     c.Query("sort"),
		Desc:     c.Query("dir") == "desc",
		Currency: h.currency,
	})

	page := view.ManageProductsPage{
		Total:      g.Total,
		Page:       g.Page,
		PageSize:   g.PageSize,
		PageSizes:  products.PageSizes,
		TotalPages: g.TotalPages,
		Sort:       g.Sort,
		Dir:        "asc",
	}
	if g.Desc {
		page.Dir = "desc"
	}
	for _, r := range g.Rows {
		page.Rows = append(page.Rows, view.AdminProductRow{
			ID:         r.ID,
			Name:       r.Name,
			Price:      r.Price,
			Category:   r.Category,
			Brand:      r.Brand,
			InStock:    r.InStock,
			ImageCount: len(r.Images),
		})
	}

	render.Component(c, http.StatusOK, pages.AdminManageProducts(render.Nav(c), middleware.GetFlash(c), page))
}

// ToggleStock flips the flag the row was rendered with. The form posts the
// current value, not the desired one.
func (h *ProductsHandler) ToggleStock(c *gin.Context) {
	current, err := strconv.ParseBool(c.PostForm("in_stock"))
	if err != nil {
		middleware.Fail(c, apperr.New(apperr.Invalid, "Invalid stock value.").WithFields(map[string]string{"in_stock": "Invalid value."}))
		return
	}

	var n flash.Notices
	if err := h.actions.ToggleStock(c.Request.Context(), &n, c.Param("id"), current); err != nil {
		// the notice carries the user-facing message; the cause goes to the request log
		_ = c.Error(err)
	}
	render.RedirectWithNotices(c, h.flash, backToGrid(c), n.Items())
}

func (h *ProductsHandler) ConfirmDelete(c *gin.Context) {
	p, ok := h.load(c)
	if !ok {
		return
	}
	render.Component(c, http.StatusOK, pages.AdminConfirmDelete(render.Nav(c), middleware.GetFlash(c), view.ConfirmDeletePage{
		ID:         p.ID,
		Name:       p.Name,
		ImageCount: len(p.ImageRefs()),
	}))
}

// Delete requires confirm=1. Anything else is a declined confirmation and
// goes straight back to the grid.
func (h *ProductsHandler) Delete(c *gin.Context) {
	if c.PostForm("confirm") != "1" {
		c.Redirect(http.StatusFound, gridPath)
		return
	}

	p, ok := h.load(c)
	if !ok {
		return
	}

	var n flash.Notices
	h.actions.Delete(c.Request.Context(), &n, p.ID, p.ImageRefs(), true)
	render.RedirectWithNotices(c, h.flash, gridPath, n.Items())
}

func (h *ProductsHandler) load(c *gin.Context) (products.Product, bool) {
	p, err := h.catalog.Product(c.Request.Context(), c.Param("id"))
	if errors.Is(err, products.ErrNotFound) {
		middleware.Fail(c, apperr.New(apperr.NotFound, "Product not found."))
		return products.Product{}, false
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return products.Product{}, false
	}
	return p, true
}

// backToGrid keeps the admin on the page they acted from when the referer is
// the grid itself.
func backToGrid(c *gin.Context) string {
	ref, err := url.Parse(c.GetHeader("Referer"))
	if err != nil || ref.Path != gridPath {
		return gridPath
	}
	if ref.RawQuery == "" {
		return gridPath
	}
	return gridPath + "?" + ref.RawQuery
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
