package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Heading(title string, center bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		if center {
			hw.Raw(`<h1 class="heading heading-center">`)
		} else {
			hw.Raw(`<h1 class="heading">`)
		}
		hw.Text(title)
		hw.Raw(`</h1>`)
		return hw.Err()
	})
}

// Status renders the stock badge used in the product grid and detail page.
func Status(inStock bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		if inStock {
			hw.Raw(`<span class="status status-ok">in stock</span>`)
		} else {
			hw.Raw(`<span class="status status-out">out of stock</span>`)
		}
		return hw.Err()
	})
}

// CSRFField is the hidden input every POST form carries.
func CSRFField(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<input type="hidden" name="csrf_token" value="`)
		hw.Text(token)
		hw.Raw(`">`)
		return hw.Err()
	})
}

// SearchBar always renders an empty input; the submitted term lives only in
// the URL the form redirects to.
func SearchBar(csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<form class="search-bar" method="post" action="/search">`)
		hw.Render(ctx, CSRFField(csrfToken))
		hw.Raw(`<input type="text" name="searchTerm" placeholder="Explore E~Shop" autocomplete="off">`,
			`<button type="submit">Search</button>`,
			`</form>`)
		return hw.Err()
	})
}
