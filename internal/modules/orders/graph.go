package orders

import "time"

const graphDays = 7

type DayTotal struct {
	Day         string // weekday name
	Date        string // YYYY-MM-DD
	AmountCents int64
}

// DailyTotals sums complete orders per calendar day for the seven days ending
// on now's date, oldest first. Days without sales are present with zero.
func DailyTotals(items []Order, now time.Time) []DayTotal {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(graphDays - 1))

	out := make([]DayTotal, graphDays)
	index := make(map[string]int, graphDays)
	for i := 0; i < graphDays; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		out[i] = DayTotal{Day: d.Weekday().String(), Date: key}
		index[key] = i
	}

	for _, o := range items {
		if o.Status != StatusComplete {
			continue
		}
		key := o.CreatedAt.In(loc).Format("2006-01-02")
		if i, ok := index[key]; ok {
			out[i].AmountCents += o.AmountCents
		}
	}
	return out
}
