package pages

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/components"
)

func Home(nav view.Nav, flash []view.Flash, p view.StorefrontPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		if len(p.Products) == 0 {
			hw.Raw(`<div class="empty"><p>No product found. Click "All" to clear filters.</p><a href="/">All</a></div>`)
			return hw.Err()
		}
		hw.Raw(`<div class="product-grid">`)
		for _, pc := range p.Products {
			hw.Raw(`<a class="product-card" href="/product/`)
			hw.Text(url.PathEscape(pc.ID))
			hw.Raw(`">`)
			if pc.ImageURL != "" {
				hw.Raw(`<img src="`)
				hw.Text(pc.ImageURL)
				hw.Raw(`" alt="`)
				hw.Text(pc.Name)
				hw.Raw(`">`)
			}
			hw.Raw(`<div class="product-name">`)
			hw.Text(pc.Name)
			hw.Raw(`</div><div class="product-price">`)
			hw.Text(pc.Price)
			hw.Raw(`</div></a>`)
		}
		hw.Raw(`</div>`)
		return hw.Err()
	})
	return Layout("Home", nav, flash, body)
}

func Product(nav view.Nav, flash []view.Flash, p view.ProductDetail) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<article class="product-detail"><div class="gallery">`)
		for _, img := range p.Images {
			hw.Raw(`<img src="`)
			hw.Text(img.URL)
			hw.Raw(`" alt="`)
			hw.Text(img.Color)
			hw.Raw(`" data-color-code="`)
			hw.Text(img.ColorCode)
			hw.Raw(`">`)
		}
		hw.Raw(`</div><div class="info">`)
		hw.Render(ctx, components.Heading(p.Name, false))
		hw.Raw(`<div class="price">`)
		hw.Text(p.Price)
		hw.Raw(`</div><p>`)
		hw.Text(p.Description)
		hw.Raw(`</p><dl><dt>Category</dt><dd>`)
		hw.Text(p.Category)
		hw.Raw(`</dd><dt>Brand</dt><dd>`)
		hw.Text(p.Brand)
		hw.Raw(`</dd></dl>`)
		hw.Render(ctx, components.Status(p.InStock))
		hw.Raw(`</div></article>`)
		return hw.Err()
	})
	return Layout(p.Name, nav, flash, body)
}
