// Package summary derives the admin dashboard counters from already fetched
// orders, products and users.
package summary

import (
	"github.com/Ahmed-hessen/E-shop/internal/modules/orders"
	"github.com/Ahmed-hessen/E-shop/internal/modules/products"
	"github.com/Ahmed-hessen/E-shop/internal/modules/users"
	"github.com/Ahmed-hessen/E-shop/internal/shared/money"
)

type Summary struct {
	TotalSaleCents int64
	TotalProducts  int64
	TotalOrders    int64
	PaidOrders     int64
	UnpaidOrders   int64
	TotalUsers     int64
}

// Compute is pure. Orders whose status is neither complete nor pending count
// toward TotalOrders only, so PaidOrders+UnpaidOrders can be less than
// TotalOrders.
func Compute(ords []orders.Order, ps []products.Product, us []users.User) Summary {
	s := Summary{
		TotalOrders:   int64(len(ords)),
		TotalProducts: int64(len(ps)),
		TotalUsers:    int64(len(us)),
	}
	for _, o := range ords {
		switch o.Status {
		case orders.StatusComplete:
			s.TotalSaleCents += o.AmountCents
			s.PaidOrders++
		case orders.StatusPending:
			s.UnpaidOrders++
		}
	}
	return s
}

type Tile struct {
	Key     string
	Label   string
	Value   int64
	Display string
}

// Tiles lists the counters in dashboard order. Only the sale tile is money.
func (s Summary) Tiles(currency string) []Tile {
	return []Tile{
		{Key: "sale", Label: "Total Sale", Value: s.TotalSaleCents, Display: money.FormatPrice(s.TotalSaleCents, currency)},
		{Key: "products", Label: "Total Products", Value: s.TotalProducts, Display: money.FormatNumber(s.TotalProducts)},
		{Key: "orders", Label: "Total Orders", Value: s.TotalOrders, Display: money.FormatNumber(s.TotalOrders)},
		{Key: "paidOrders", Label: "Paid Orders", Value: s.PaidOrders, Display: money.FormatNumber(s.PaidOrders)},
		{Key: "unpaidOrders", Label: "Unpaid Orders", Value: s.UnpaidOrders, Display: money.FormatNumber(s.UnpaidOrders)},
		{Key: "users", Label: "Total Users", Value: s.TotalUsers, Display: money.FormatNumber(s.TotalUsers)},
	}
}
