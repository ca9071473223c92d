package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's prometheus collectors on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	stockToggles        *prometheus.CounterVec
	productDeletes      *prometheus.CounterVec
	imageDeleteFailures prometheus.Counter
	projectionReads     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())

	return &Metrics{
		reg: reg,

		stockToggles: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eshop_product_stock_toggles_total",
			Help: "Stock toggle actions by result.",
		}, []string{"result"}),
		productDeletes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eshop_product_deletes_total",
			Help: "Product delete actions by result.",
		}, []string{"result"}),
		imageDeleteFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "eshop_product_image_delete_failures_total",
			Help: "Stored product images that could not be deleted.",
		}),
		projectionReads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "eshop_projection_reads_total",
			Help: "Read-side projection lookups by view and source (cache|db).",
		}, []string{"view", "source"}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

func (m *Metrics) StockToggled(ok bool) { m.stockToggles.WithLabelValues(result(ok)).Inc() }

func (m *Metrics) ProductDeleted(ok bool) { m.productDeletes.WithLabelValues(result(ok)).Inc() }

func (m *Metrics) ImageDeleteFailed() { m.imageDeleteFailures.Inc() }

func (m *Metrics) ProjectionRead(view string, cached bool) {
	source := "db"
	if cached {
		source = "cache"
	}
	m.projectionReads.WithLabelValues(view, source).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
