package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
)

type stockCall struct {
	id      string
	inStock bool
}

type fakeBackend struct {
	sets    []stockCall
	deletes []string
	err     error
}

func (f *fakeBackend) SetInStock(ctx context.Context, id string, inStock bool) error {
	f.sets = append(f.sets, stockCall{id, inStock})
	return f.err
}

func (f *fakeBackend) Delete(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return f.err
}

type fakeInvalidator struct{ n int }

func (f *fakeInvalidator) Invalidate() { f.n++ }

func newRouter(b Backend, inv Invalidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), nil))
	h := NewProductsAPI(b, inv)
	r.PUT("/api/product", h.Update)
	r.DELETE("/api/product/:id", h.Delete)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdate_SetsStockAndInvalidates(t *testing.T) {
	b, inv := &fakeBackend{}, &fakeInvalidator{}
	w := do(newRouter(b, inv), http.MethodPut, "/api/product", `{"id":"p1","inStock":false}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if len(b.sets) != 1 || b.sets[0] != (stockCall{"p1", false}) {
		t.Fatalf("unexpected calls: %+v", b.sets)
	}
	if inv.n != 1 {
		t.Fatalf("expected one invalidation, got %d", inv.n)
	}
}

func TestUpdate_MissingFields(t *testing.T) {
	b, inv := &fakeBackend{}, &fakeInvalidator{}
	w := do(newRouter(b, inv), http.MethodPut, "/api/product", `{"id":"p1"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body struct {
		Error     string            `json:"error"`
		RequestID string            `json:"request_id"`
		Fields    map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body.Fields["inStock"]; !ok {
		t.Fatalf("expected inStock field error, got %+v", body.Fields)
	}
	if body.RequestID == "" {
		t.Fatalf("expected request id in error body")
	}
	if len(b.sets) != 0 || inv.n != 0 {
		t.Fatalf("backend must not be called")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	b, inv := &fakeBackend{err: products.ErrNotFound}, &fakeInvalidator{}
	w := do(newRouter(b, inv), http.MethodPut, "/api/product", `{"id":"nope","inStock":true}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if inv.n != 0 {
		t.Fatalf("failed update must not invalidate")
	}
}

func TestDelete_BackendFailure(t *testing.T) {
	b, inv := &fakeBackend{err: errors.New("db down")}, &fakeInvalidator{}
	w := do(newRouter(b, inv), http.MethodDelete, "/api/product/p1", "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "db down") {
		t.Fatalf("internal error leaked: %s", w.Body.String())
	}
	if inv.n != 0 {
		t.Fatalf("failed delete must not invalidate")
	}
}

func TestDelete_Success(t *testing.T) {
	b, inv := &fakeBackend{}, &fakeInvalidator{}
	w := do(newRouter(b, inv), http.MethodDelete, "/api/product/p1", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(b.deletes) != 1 || b.deletes[0] != "p1" || inv.n != 1 {
		t.Fatalf("unexpected state: deletes=%v invalidations=%d", b.deletes, inv.n)
	}
}
