package faretable

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"sapsan-table/lib/htmlutil"
	"sapsan-table/lib/scrapers/rzd"
	"sapsan-table/lib/timezone"
)

func fixtureDays() []DayFare {
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, timezone.Location)

	quote := func(day int, hour int, price float64) rzd.Quote {
		return rzd.Quote{
			Train:     "757А",
			Departure: time.Date(2026, 1, day, hour, 40, 0, 0, timezone.Location),
			Price:     price,
		}
	}

	return []DayFare{
		{
			Date:     start,
			Quotes:   []rzd.Quote{quote(2, 5, 3990), quote(2, 13, 4500)},
			MinPrice: 3990,
			HasPrice: true,
		},
		{
			// sold out
			Date: start.AddDate(0, 0, 1),
		},
		{
			Date:     start.AddDate(0, 0, 2),
			Quotes:   []rzd.Quote{quote(4, 7, 2790)},
			MinPrice: 2790,
			HasPrice: true,
		},
	}
}

func TestRenderHTML(t *testing.T) {
	document, err := RenderHTML(fixtureDays())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(document, "<!DOCTYPE html>"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	require.NoError(t, err)

	rows := doc.Find("tbody tr")
	require.Equal(t, 3, rows.Length())

	expectedDates := []string{
		"02.01.2026, Пятница",
		"03.01.2026, Суббота",
		"04.01.2026, Воскресенье",
	}
	rows.Each(func(i int, row *goquery.Selection) {
		header := row.Find("th")
		require.Equal(t, 1, header.Length())
		require.Equal(t, expectedDates[i], htmlutil.CollapseText(header.Nodes[0]))
	})

	// prices show up as literal text with space separators
	require.Contains(t, document, "3 990 ₽")
	require.Contains(t, document, "2 790 ₽")

	// the sold-out date renders an explicit marker instead of vanishing
	empty := doc.Find("td.empty")
	require.Equal(t, 1, empty.Length())
	require.Equal(t, "—", htmlutil.CollapseText(empty.Nodes[0]))

	// departure detail survives under the price cell
	require.Contains(t, document, "13:40")
}

func TestRenderHTMLRowCountMatchesInput(t *testing.T) {
	days := fixtureDays()
	for n := 1; n <= len(days); n++ {
		document, err := RenderHTML(days[:n])
		require.NoError(t, err)

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
		require.NoError(t, err)
		require.Equal(t, n, doc.Find("tbody tr").Length())
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		price    float64
		expected string
	}{
		{0, "0 ₽"},
		{999, "999 ₽"},
		{3990, "3 990 ₽"},
		{3990.5, "3 990 ₽"},
		{1234567, "1 234 567 ₽"},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, FormatPrice(test.price))
	}
}

func TestRenderPreview(t *testing.T) {
	var buf bytes.Buffer
	RenderPreview(&buf, fixtureDays())

	out := buf.String()
	require.Contains(t, out, "02.01.2026")
	require.Contains(t, out, "3 990 ₽")
	require.Contains(t, out, "—")
}
