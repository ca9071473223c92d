package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/components"
)

func Layout(title string, nav view.Nav, flash []view.Flash, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<meta name="csrf-token" content="`)
		hw.Text(nav.CSRFToken)
		hw.Raw(`"><title>`)
		hw.Text(title)
		hw.Raw(` | E~Shop</title></head><body>`,
			`<header class="navbar"><a class="brand" href="/">E~Shop</a>`)
		hw.Render(ctx, components.SearchBar(nav.CSRFToken))
		hw.Raw(`<nav>`)
		if nav.IsAdmin {
			hw.Raw(`<a href="/admin">Summary</a><a href="/admin/manage-products">Manage Products</a>`)
		}
		if nav.LoggedIn {
			hw.Raw(`<span class="user">`)
			hw.Text(nav.UserName)
			hw.Raw(`</span><form method="post" action="/logout">`)
			hw.Render(ctx, components.CSRFField(nav.CSRFToken))
			hw.Raw(`<button type="submit">Logout</button></form>`)
		} else {
			hw.Raw(`<a href="/login">Login</a>`)
		}
		hw.Raw(`</nav></header><main class="container">`)
		hw.Render(ctx, components.Flashes(flash))
		hw.Render(ctx, body)
		hw.Raw(`</main></body></html>`)
		return hw.Err()
	})
}
