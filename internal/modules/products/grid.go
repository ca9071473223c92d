package products

import (
	"sort"
	"strings"

	"github.com/Ahmed-hessen/E-shop/internal/shared/money"
)

const DefaultPageSize = 9

// PageSizes are the page sizes the manage-products grid offers.
var PageSizes = []int{9, 20}

var sortFields = map[string]func(a, b GridRow) bool{
	"id":       func(a, b GridRow) bool { return a.ID < b.ID },
	"name":     func(a, b GridRow) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"price":    func(a, b GridRow) bool { return a.PriceCents < b.PriceCents },
	"category": func(a, b GridRow) bool { return a.Category < b.Category },
	"brand":    func(a, b GridRow) bool { return a.Brand < b.Brand },
	"inStock":  func(a, b GridRow) bool { return !a.InStock && b.InStock },
}

type GridParams struct {
	Page     int
	PageSize int
	Sort     string
	Desc     bool
	Currency string
}

type GridRow struct {
	ID         string
	Name       string
	Price      string
	PriceCents int64
	Category   string
	Brand      string
	InStock    bool
	Images     []string
}

type Grid struct {
	Rows       []GridRow
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	Sort       string
	Desc       bool
}

// BuildGrid maps products to display rows, sorts them (stable, so equal keys
// keep repository order) and cuts out the requested page.
func BuildGrid(items []Product, in GridParams) Grid {
	rows := make([]GridRow, 0, len(items))
	for _, p := range items {
		rows = append(rows, GridRow{
			ID:         p.ID,
			Name:       p.Name,
			Price:      money.FormatPrice(p.PriceCents, in.Currency),
			PriceCents: p.PriceCents,
			Category:   p.Category,
			Brand:      p.Brand,
			InStock:    p.InStock,
			Images:     p.ImageRefs(),
		})
	}

	g := Grid{Total: len(rows), PageSize: normalizePageSize(in.PageSize)}

	if less, ok := sortFields[in.Sort]; ok {
		g.Sort, g.Desc = in.Sort, in.Desc
		sort.SliceStable(rows, func(i, j int) bool {
			if in.Desc {
				return less(rows[j], rows[i])
			}
			return less(rows[i], rows[j])
		})
	}

	g.TotalPages = (g.Total + g.PageSize - 1) / g.PageSize
	if g.TotalPages < 1 {
		g.TotalPages = 1
	}
	g.Page = in.Page
	if g.Page < 1 {
		g.Page = 1
	}
	if g.Page > g.TotalPages {
		g.Page = g.TotalPages
	}

	start := (g.Page - 1) * g.PageSize
	end := start + g.PageSize
	if end > len(rows) {
		end = len(rows)
	}
	g.Rows = rows[start:end]
	return g
}

func normalizePageSize(n int) int {
	for _, s := range PageSizes {
		if n == s {
			return n
		}
	}
	return DefaultPageSize
}
