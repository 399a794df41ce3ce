package faretable

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"sapsan-table/lib/scrapers/rzd"
)

// RenderPreview prints a compact summary of the fetched range, one line
// per date, mirroring the rows of the HTML document.
func RenderPreview(w io.Writer, days []DayFare) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Дата", "Минимальная цена", "Рейсов"})
	for _, day := range days {
		price := "—"
		if day.HasPrice {
			price = FormatPrice(day.MinPrice)
		}
		t.AppendRow(table.Row{
			day.Date.Format(rzd.DateFormat),
			price,
			len(day.Quotes),
		})
	}
	t.Render()
}
