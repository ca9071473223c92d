package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-hessen/E-shop/internal/http/middleware"
	"github.com/Ahmed-hessen/E-shop/internal/http/render"
	"github.com/Ahmed-hessen/E-shop/internal/modules/orders"
	"github.com/Ahmed-hessen/E-shop/internal/modules/snapshot"
	"github.com/Ahmed-hessen/E-shop/internal/modules/summary"
	"github.com/Ahmed-hessen/E-shop/internal/shared/apperr"
	"github.com/Ahmed-hessen/E-shop/internal/shared/money"
	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/pages"
)

type DashboardSource interface {
	Dashboard(ctx context.Context) (snapshot.Dashboard, error)
}

type DashboardHandler struct {
	source   DashboardSource
	currency string
}

func NewDashboardHandler(source DashboardSource, currency string) *DashboardHandler {
	return &DashboardHandler{source: source, currency: currency}
}

func (h *DashboardHandler) Show(c *gin.Context) {
	d, err := h.source.Dashboard(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	s := summary.Compute(d.Orders, d.Products, d.Users)
	page := view.DashboardPage{Graph: graphBars(d.Graph, h.currency)}
	for _, t := range s.Tiles(h.currency) {
		page.Tiles = append(page.Tiles, view.SummaryTile{Key: t.Key, Label: t.Label, Display: t.Display})
	}

	render.Component(c, http.StatusOK, pages.AdminDashboard(render.Nav(c), middleware.GetFlash(c), page))
}

func graphBars(days []orders.DayTotal, currency string) []view.GraphBar {
	var peak int64
	for _, d := range days {
		if d.AmountCents > peak {
			peak = d.AmountCents
		}
	}

	out := make([]view.GraphBar, 0, len(days))
	for _, d := range days {
		pct := 0
		if peak > 0 {
			pct = int(d.AmountCents * 100 / peak)
		}
		out = append(out, view.GraphBar{
			Day:     d.Day,
			Date:    d.Date,
			Amount:  money.FormatPrice(d.AmountCents, currency),
			Percent: pct,
		})
	}
	return out
}
