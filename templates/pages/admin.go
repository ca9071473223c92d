package pages

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/components"
)

func AdminDashboard(nav view.Nav, flash []view.Flash, p view.DashboardPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<section class="summary">`)
		hw.Render(ctx, components.Heading("Stats", true))
		hw.Render(ctx, components.SummaryTiles(p.Tiles))
		hw.Raw(`</section><section class="graph">`)
		hw.Render(ctx, components.Heading("Sales over the last 7 days", false))
		hw.Render(ctx, components.BarGraph(p.Graph))
		hw.Raw(`</section>`)
		return hw.Err()
	})
	return Layout("Summary", nav, flash, body)
}

var gridColumns = []struct {
	Field string
	Title string
}{
	{"id", "ID"},
	{"name", "Name"},
	{"price", "Price"},
	{"category", "Category"},
	{"brand", "Brand"},
	{"inStock", "In Stock"},
}

func AdminManageProducts(nav view.Nav, flash []view.Flash, p view.ManageProductsPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Render(ctx, components.Heading("Manage Products", true))
		hw.Raw(`<table class="grid"><thead><tr>`)
		for _, col := range gridColumns {
			dir := "asc"
			if p.Sort == col.Field && p.Dir == "asc" {
				dir = "desc"
			}
			hw.Raw(`<th><a href="`)
			hw.Text(gridURL(1, p.PageSize, col.Field, dir))
			hw.Raw(`">`)
			hw.Text(col.Title)
			if p.Sort == col.Field {
				if p.Dir == "desc" {
					hw.Raw(` &darr;`)
				} else {
					hw.Raw(` &uarr;`)
				}
			}
			hw.Raw(`</a></th>`)
		}
		hw.Raw(`<th>Actions</th></tr></thead><tbody>`)
		for _, r := range p.Rows {
			base := "/admin/manage-products/" + url.PathEscape(r.ID)
			hw.Raw(`<tr><td class="mono">`)
			hw.Text(r.ID)
			hw.Raw(`</td><td>`)
			hw.Text(r.Name)
			hw.Raw(`</td><td>`)
			hw.Text(r.Price)
			hw.Raw(`</td><td>`)
			hw.Text(r.Category)
			hw.Raw(`</td><td>`)
			hw.Text(r.Brand)
			hw.Raw(`</td><td>`)
			hw.Render(ctx, components.Status(r.InStock))
			hw.Raw(`</td><td class="actions">`)
			hw.Raw(`<form method="post" action="`)
			hw.Text(base + "/toggle-stock")
			hw.Raw(`">`)
			hw.Render(ctx, components.CSRFField(nav.CSRFToken))
			hw.Raw(`<input type="hidden" name="in_stock" value="`, strconv.FormatBool(r.InStock), `">`,
				`<button type="submit" title="Toggle stock">&#8635;</button></form>`)
			hw.Raw(`<a class="danger" title="Delete" href="`)
			hw.Text(base + "/delete")
			hw.Raw(`">&#128465;</a>`)
			hw.Raw(`<a title="View" href="/product/`)
			hw.Text(url.PathEscape(r.ID))
			hw.Raw(`">&#128065;</a></td></tr>`)
		}
		if len(p.Rows) == 0 {
			hw.Raw(`<tr><td colspan="7" class="empty">No products</td></tr>`)
		}
		hw.Raw(`</tbody></table><div class="pager">`)
		for _, size := range p.PageSizes {
			if size == p.PageSize {
				hw.Raw(`<strong>`, strconv.Itoa(size), `</strong>`)
				continue
			}
			hw.Raw(`<a href="`)
			hw.Text(gridURL(1, size, p.Sort, p.Dir))
			hw.Raw(`">`, strconv.Itoa(size), `</a>`)
		}
		hw.Raw(`<span>Page `, strconv.Itoa(p.Page), ` of `, strconv.Itoa(p.TotalPages), ` (`, strconv.Itoa(p.Total), ` products)</span>`)
		if p.Page > 1 {
			hw.Raw(`<a href="`)
			hw.Text(gridURL(p.Page-1, p.PageSize, p.Sort, p.Dir))
			hw.Raw(`">Previous</a>`)
		}
		if p.Page < p.TotalPages {
			hw.Raw(`<a href="`)
			hw.Text(gridURL(p.Page+1, p.PageSize, p.Sort, p.Dir))
			hw.Raw(`">Next</a>`)
		}
		hw.Raw(`</div>`)
		return hw.Err()
	})
	return Layout("Manage Products", nav, flash, body)
}

func gridURL(page, size int, sort, dir string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if sort != "" {
		q.Set("sort", sort)
		q.Set("dir", dir)
	}
	return "/admin/manage-products?" + q.Encode()
}

func AdminConfirmDelete(nav view.Nav, flash []view.Flash, p view.ConfirmDeletePage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Render(ctx, components.Heading("Delete product", false))
		hw.Raw(`<p>Are you sure you want to delete <strong>`)
		hw.Text(p.Name)
		hw.Raw(`</strong>`)
		if p.ImageCount > 0 {
			hw.Raw(` and its `, strconv.Itoa(p.ImageCount), ` image(s)`)
		}
		hw.Raw(`?</p><form method="post" action="/admin/manage-products/`)
		hw.Text(url.PathEscape(p.ID))
		hw.Raw(`/delete">`)
		hw.Render(ctx, components.CSRFField(nav.CSRFToken))
		hw.Raw(`<input type="hidden" name="confirm" value="1">`,
			`<button type="submit" class="danger">Delete</button>`,
			`<a href="/admin/manage-products">Cancel</a></form>`)
		return hw.Err()
	})
	return Layout("Delete product", nav, flash, body)
}
