package apphttp

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/config"
)

func testRouter(metricsAddr string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(Deps{
		Log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: config.Config{
			MetricsAddr:   metricsAddr,
			FlashSecret:   []byte("0123456789abcdef"),
			FlashCookie:   "eshop_flash",
			SessionCookie: "eshop_session",
			CSRFCookie:    "eshop_csrf",
			Currency:      "USD",
		},
	})
}

func TestRouter_MetricsRequireAdmin(t *testing.T) {
	r := testRouter("")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login?return_to="+url.QueryEscape("/metrics") {
		t.Fatalf("expected login redirect, got %d %q", w.Code, w.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous scrape, got %d", w.Code)
	}
}

func TestRouter_MetricsOnSeparateListener(t *testing.T) {
	r := testRouter("127.0.0.1:9100")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics absent from the public router, got %d", w.Code)
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter("").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRouter_UnsafeRequestsNeedCSRFToken(t *testing.T) {
	r := testRouter("")

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/logout"},
		{http.MethodPost, "/search"},
		{http.MethodPost, "/admin/manage-products/p1/toggle-stock"},
		{http.MethodPost, "/admin/manage-products/p1/delete"},
		{http.MethodDelete, "/api/product/p1"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s %s: expected 403 without token, got %d", tc.method, tc.path, w.Code)
		}
	}
}
