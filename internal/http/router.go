package apphttp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ahmed-hessen/E-shop/internal/config"
	"github.com/Ahmed-hessen/E-shop/internal/http/flash"
	"github.com/Ahmed-hessen/E-shop/internal/http/handlers"
	"github.com/Ahmed-hessen/E-shop/internal/http/handlers/admin"
	"github.com/Ahmed-hessen/E-shop/internal/http/handlers/api"
	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/http/render"
	"github.com/Ahmed-hessen/E-shop/internal/metrics"
	"github.com/Ahmed-hessen/E-shop/internal/modules/orders"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
	"github.com/Ahmed-hessen/E-shop/internal/modules/snapshot"
	"github.com/Ahmed-hessen/E-shop/internal/modules/users"
	"github.com/Ahmed-hessen/E-shop/internal/shared/apperr"
	"github.com/Ahmed-hessen/E-shop/internal/storage"
)

type Deps struct {
	Log     *slog.Logger
	DB      *gorm.DB
	Storage storage.Storage
	Config  config.Config
	Metrics *metrics.Metrics
}

func NewRouter(d Deps) *gin.Engine {
	if d.Metrics == nil {
		d.Metrics = metrics.New()
	}
	cfg := d.Config

	productRepo := products.NewRepo(d.DB)
	orderRepo := orders.NewRepo(d.DB)
	userRepo := users.NewRepo(d.DB)

	loader := snapshot.NewLoader(productRepo, orderRepo, userRepo, cfg.ProjectionTTL, d.Metrics)
	manager := products.NewManager(productRepo, d.Storage, loader, d.Metrics, d.Log)

	flashCodec := flash.NewCodec(cfg.FlashSecret, cfg.FlashCookie, cfg.CookieSecure)
	sessCfg := middleware.SessionCfg{
		DB:         d.DB,
		CookieName: cfg.SessionCookie,
		Secure:     cfg.CookieSecure,
		TTL:        cfg.SessionTTL,
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.ErrorHandler(d.Log, render.ErrorPage),
		middleware.Recovery(d.Log),
		middleware.FlashMiddleware(flashCodec),
		middleware.SessionMiddleware(sessCfg),
		middleware.CSRF(middleware.CSRFCfg{CookieName: cfg.CSRFCookie, Secure: cfg.CookieSecure}),
	)

	if local, ok := d.Storage.(*storage.Local); ok {
		r.Static(local.URLPrefix, local.BaseDir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	store := handlers.NewStorefrontHandler(loader, cfg.Currency)
	r.GET("/", store.Home)
	r.POST("/search", store.Search)
	r.GET("/product/:id", store.Product)

	auth := handlers.NewAuthHandlers(users.NewAuthService(userRepo), middleware.Sessions{Cfg: sessCfg}, flashCodec, sessCfg)
	r.GET("/login", auth.LoginGet)
	r.POST("/login", auth.LoginPost)
	r.POST("/logout", auth.LogoutPost)

	requireAdmin := middleware.RequireAdmin(flashCodec)

	// With METRICS_ADDR set the scrape endpoint lives on its own listener.
	if cfg.MetricsAddr == "" {
		r.GET("/metrics", requireAdmin, gin.WrapH(d.Metrics.Handler()))
	}

	adminGroup := r.Group("/admin", requireAdmin)
	{
		dash := admin.NewDashboardHandler(loader, cfg.Currency)
		adminGroup.GET("", dash.Show)

		ph := admin.NewProductsHandler(loader, manager, flashCodec, cfg.Currency)
		adminGroup.GET("/manage-products", ph.List)
		adminGroup.POST("/manage-products/:id/toggle-stock", ph.ToggleStock)
		adminGroup.GET("/manage-products/:id/delete", ph.ConfirmDelete)
		adminGroup.POST("/manage-products/:id/delete", ph.Delete)
	}

	apiGroup := r.Group("/api", requireAdmin)
	{
		pa := api.NewProductsAPI(productRepo, loader)
		apiGroup.PUT("/product", pa.Update)
		apiGroup.DELETE("/product/:id", pa.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		middleware.Fail(c, apperr.New(apperr.NotFound, "Page not found."))
	})

	return r
}
