package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/Ahmed-hessen/E-shop/pkg/view"
)

func SummaryTiles(tiles []view.SummaryTile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<div class="summary-grid">`)
		for _, t := range tiles {
			hw.Raw(`<div class="summary-tile" data-key="`)
			hw.Text(t.Key)
			hw.Raw(`"><div class="summary-value">`)
			hw.Text(t.Display)
			hw.Raw(`</div><div class="summary-label">`)
			hw.Text(t.Label)
			hw.Raw(`</div></div>`)
		}
		hw.Raw(`</div>`)
		return hw.Err()
	})
}

func BarGraph(bars []view.GraphBar) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		hw.Raw(`<div class="bar-graph">`)
		for _, b := range bars {
			hw.Raw(`<div class="bar" title="`)
			hw.Text(b.Date)
			hw.Raw(`"><div class="bar-fill" style="height:`, strconv.Itoa(b.Percent), `%"></div><div class="bar-amount">`)
			hw.Text(b.Amount)
			hw.Raw(`</div><div class="bar-day">`)
			hw.Text(b.Day)
			hw.Raw(`</div></div>`)
		}
		hw.Raw(`</div>`)
		return hw.Err()
	})
}
