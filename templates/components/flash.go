package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
)

func Flashes(fs []view.Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(fs) == 0 {
			return nil
		}
		hw := NewWriter(w)
		hw.Raw(`<div class="flashes" role="status">`)
		for _, f := range fs {
			hw.Raw(`<div class="flash flash-`)
			hw.Text(string(f.Kind))
			hw.Raw(`">`)
			hw.Text(f.Message)
			hw.Raw(`</div>`)
		}
		hw.Raw(`</div>`)
		return hw.Err()
	})
}
