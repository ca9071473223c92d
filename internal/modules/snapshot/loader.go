// Package snapshot serves the read side of the admin and storefront pages
// from projection caches that product mutations invalidate.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/Ahmed-hessen/E-shop/internal/modules/orders"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
	"github.com/Ahmed-hessen/E-shop/internal/modules/users"
	"github.com/Ahmed-hessen/E-shop/internal/shared/projection"
)

const (
	viewDashboard = "dashboard"
	viewProducts  = "products"
)

type ProductReader interface {
	List(ctx context.Context, in products.ListParams) ([]products.Product, error)
	Get(ctx context.Context, id string) (products.Product, error)
}

type OrderReader interface {
	List(ctx context.Context) ([]orders.Order, error)
}

type UserReader interface {
	List(ctx context.Context) ([]users.User, error)
}

type Recorder interface {
	ProjectionRead(view string, cached bool)
}

type Dashboard struct {
	Orders   []orders.Order
	Products []products.Product
	Users    []users.User
	Graph    []orders.DayTotal
}

type Loader struct {
	products ProductReader
	orders   OrderReader
	users    UserReader
	rec      Recorder
	now      func() time.Time

	dashboard *projection.Cache[Dashboard]
	catalog   *projection.Cache[[]products.Product]
}

func NewLoader(p ProductReader, o OrderReader, u UserReader, ttl time.Duration, rec Recorder) *Loader {
	return &Loader{
		products:  p,
		orders:    o,
		users:     u,
		rec:       rec,
		now:       time.Now,
		dashboard: projection.New[Dashboard](ttl),
		catalog:   projection.New[[]products.Product](ttl),
	}
}

// Dashboard returns all orders, products and users plus the seven-day graph.
func (l *Loader) Dashboard(ctx context.Context) (Dashboard, error) {
	d, cached, err := l.dashboard.Get(ctx, viewDashboard, func(ctx context.Context) (Dashboard, error) {
		ps, err := l.products.List(ctx, products.ListParams{})
		if err != nil {
			return Dashboard{}, fmt.Errorf("load products: %w", err)
		}
		ords, err := l.orders.List(ctx)
		if err != nil {
			return Dashboard{}, fmt.Errorf("load orders: %w", err)
		}
		us, err := l.users.List(ctx)
		if err != nil {
			return Dashboard{}, fmt.Errorf("load users: %w", err)
		}
		return Dashboard{
			Orders:   ords,
			Products: ps,
			Users:    us,
			Graph:    orders.DailyTotals(ords, l.now()),
		}, nil
	})
	if err != nil {
		return Dashboard{}, err
	}
	l.record(viewDashboard, cached)
	return d, nil
}

// Products returns the product list. Only the unfiltered listing is cached;
// category and search filters come from the request and go straight to the
// repository so arbitrary terms cannot grow the cache.
func (l *Loader) Products(ctx context.Context, in products.ListParams) ([]products.Product, error) {
	if in != (products.ListParams{}) {
		ps, err := l.products.List(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
		l.record(viewProducts, false)
		return ps, nil
	}

	ps, cached, err := l.catalog.Get(ctx, viewProducts, func(ctx context.Context) ([]products.Product, error) {
		return l.products.List(ctx, in)
	})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	l.record(viewProducts, cached)
	return ps, nil
}

// Product reads a single product straight from the repository.
func (l *Loader) Product(ctx context.Context, id string) (products.Product, error) {
	return l.products.Get(ctx, id)
}

// Invalidate drops every cached view; the next read goes to the database.
func (l *Loader) Invalidate() {
	l.dashboard.Invalidate()
	l.catalog.Invalidate()
}

func (l *Loader) record(view string, cached bool) {
	if l.rec != nil {
		l.rec.ProjectionRead(view, cached)
	}
}
