package pages

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
	"github.com/Ahmed-hessen/E-shop/templates/components"
)

func Error(nav view.Nav, status int, msg, requestID string, flash []view.Flash) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := components.NewWriter(w)
		hw.Render(ctx, components.Heading(strconv.Itoa(status)+" "+http.StatusText(status), false))
		hw.Raw(`<p>`)
		hw.Text(msg)
		hw.Raw(`</p>`)
		if requestID != "" {
			hw.Raw(`<p class="muted">Request ID: `)
			hw.Text(requestID)
			hw.Raw(`</p>`)
		}
		hw.Raw(`<a href="/">Back to the shop</a>`)
		return hw.Err()
	})
	return Layout("Error", nav, flash, body)
}
