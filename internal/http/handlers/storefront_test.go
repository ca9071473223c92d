package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeCatalog struct {
	items []products.Product
	last  products.ListParams
}

func (f *fakeCatalog) Products(ctx context.Context, in products.ListParams) ([]products.Product, error) {
	f.last = in
	return f.items, nil
}

func (f *fakeCatalog) Product(ctx context.Context, id string) (products.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return products.Product{}, products.ErrNotFound
}

func storefrontRouter(cat Catalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(quietLog, nil))
	h := NewStorefrontHandler(cat, "USD")
	r.GET("/", h.Home)
	r.POST("/search", h.Search)
	r.GET("/product/:id", h.Product)
	return r
}

func TestSearch_RedirectTargets(t *testing.T) {
	r := storefrontRouter(&fakeCatalog{})

	cases := []struct {
		name string
		term string
		want string
	}{
		{"empty term goes home", "", "/"},
		{"term becomes query", "shoes", "/?searchTerm=shoes"},
		{"term is encoded", "red shoes&more", "/?searchTerm=red%20shoes%26more"},
		{"whitespace is kept", "  ", "/?searchTerm=%20%20"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{"searchTerm": {tc.term}}
			req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", w.Code)
			}
			if got := w.Header().Get("Location"); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestHome_PassesFiltersThrough(t *testing.T) {
	cat := &fakeCatalog{items: []products.Product{{ID: "p1", Name: "Runner", PriceCents: 4999}}}
	r := storefrontRouter(cat)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?category=Shoes&searchTerm=run", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cat.last.Category != "Shoes" || cat.last.SearchTerm != "run" {
		t.Fatalf("filters not passed: %+v", cat.last)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Runner") || !strings.Contains(body, "$49.99") {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, `value="run"`) {
		t.Fatalf("search input must render empty")
	}
}

func TestHome_EmptyState(t *testing.T) {
	w := httptest.NewRecorder()
	storefrontRouter(&fakeCatalog{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?searchTerm=zzz", nil))

	if !strings.Contains(w.Body.String(), "No product found") {
		t.Fatalf("expected empty state")
	}
}

func TestProduct_NotFound(t *testing.T) {
	w := httptest.NewRecorder()
	storefrontRouter(&fakeCatalog{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestProduct_SkipsEmptyImages(t *testing.T) {
	cat := &fakeCatalog{items: []products.Product{{
		ID: "p1", Name: "Runner", InStock: true,
		Images: []products.Image{{Color: "Red", Image: "/uploads/red.png"}, {Color: "Blue"}},
	}}}
	w := httptest.NewRecorder()
	storefrontRouter(cat).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/p1", nil))

	body := w.Body.String()
	if strings.Count(body, "<img") != 1 || !strings.Contains(body, "/uploads/red.png") {
		t.Fatalf("expected exactly one image, got %s", body)
	}
}
