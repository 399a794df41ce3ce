package faretable

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"
	"time"

	"sapsan-table/lib/scrapers/rzd"
)

var ruWeekdays = map[time.Weekday]string{
	time.Monday:    "Понедельник",
	time.Tuesday:   "Вторник",
	time.Wednesday: "Среда",
	time.Thursday:  "Четверг",
	time.Friday:    "Пятница",
	time.Saturday:  "Суббота",
	time.Sunday:    "Воскресенье",
}

// FormatPrice renders a fare the way RZD displays them, whole rubles
// with a space as the thousands separator: 3990 -> "3 990 ₽".
func FormatPrice(price float64) string {
	digits := strconv.FormatInt(int64(price), 10)

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return strings.Join(groups, " ") + " ₽"
}

func formatDate(date time.Time) string {
	return date.Format(rzd.DateFormat)
}

func weekdayName(date time.Time) string {
	return ruWeekdays[date.Weekday()]
}

func departureTime(quote rzd.Quote) string {
	return quote.Departure.Format("15:04")
}

var tableTemplate = template.Must(
	template.New("faretable").
		Funcs(template.FuncMap{
			"price":   FormatPrice,
			"date":    formatDate,
			"weekday": weekdayName,
			"depart":  departureTime,
		}).
		Parse(documentTemplate),
)

// RenderHTML produces the complete standalone document: one table row
// per entry of `days`, in the given order.
func RenderHTML(days []DayFare) (string, error) {
	var buf bytes.Buffer
	err := tableTemplate.Execute(&buf, struct{ Days []DayFare }{Days: days})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

const documentTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    :root {
      color-scheme: light dark;
      --accent: #e53935;
      --bg: #ffffff;
      --bg-dark: #121212;
      --text: #1a1a1a;
      --text-dark: #f5f5f5;
      font-family: "Segoe UI", "Roboto", "Helvetica Neue", Arial, sans-serif;
    }
    body {
      background: var(--bg);
      color: var(--text);
      margin: 0;
      padding: 1rem;
    }
    @media (prefers-color-scheme: dark) {
      body {
        background: var(--bg-dark);
        color: var(--text-dark);
      }
      table {
        background: #1f1f1f;
      }
    }
    .table-wrapper {
      max-width: 100%;
      overflow-x: auto;
      border-radius: 16px;
      box-shadow: 0 20px 45px rgba(20, 30, 55, 0.12);
      background: rgba(255, 255, 255, 0.9);
      backdrop-filter: blur(12px);
    }
    table {
      width: 100%;
      border-collapse: collapse;
      min-width: 480px;
    }
    caption {
      text-align: left;
      padding: 1rem;
      font-size: 1.3rem;
      font-weight: 600;
      color: var(--accent);
    }
    th,
    td {
      padding: 0.9rem 1rem;
      border-bottom: 1px solid rgba(0, 0, 0, 0.08);
      text-align: left;
      font-size: 0.95rem;
    }
    th {
      font-weight: 600;
      background: rgba(229, 57, 53, 0.08);
    }
    tbody tr:hover {
      background: rgba(229, 57, 53, 0.12);
      transition: background 0.3s ease;
    }
    .empty {
      color: rgba(0, 0, 0, 0.45);
      font-style: italic;
    }
    details {
      margin-top: 0.35rem;
      font-size: 0.85rem;
    }
    details summary {
      cursor: pointer;
      color: var(--accent);
    }
    details ul {
      margin: 0.35rem 0 0;
      padding-left: 1.1rem;
    }
    @media (max-width: 768px) {
      table {
        min-width: unset;
        border-collapse: separate;
        border-spacing: 0;
      }
      thead {
        display: none;
      }
      tbody tr {
        display: grid;
        grid-template-columns: repeat(2, minmax(0, 1fr));
        gap: 0.5rem;
        padding: 1rem;
        border-bottom: 1px solid rgba(0, 0, 0, 0.12);
      }
      tbody tr th {
        display: block;
        background: none;
        padding: 0;
        font-size: 1.1rem;
        color: var(--accent);
      }
      tbody tr td {
        display: flex;
        justify-content: space-between;
        align-items: center;
        padding: 0.35rem 0;
        border: none;
      }
      tbody tr td::before {
        content: attr(data-label);
        font-weight: 600;
        margin-right: 0.75rem;
      }
    }
  </style>
</head>
<body>
  <div class="table-wrapper">
    <table>
      <caption>Минимальные тарифы «Сапсан» Москва → Санкт-Петербург</caption>
      <thead>
        <tr>
          <th scope="col">Дата</th>
          <th scope="col">Минимальная цена</th>
        </tr>
      </thead>
      <tbody>
{{- range .Days}}
        <tr>
          <th scope="row" data-label="Дата">{{date .Date}}, {{weekday .Date}}</th>
{{- if .HasPrice}}
          <td data-label="Минимальная цена">{{price .MinPrice}}
            <details>
              <summary>Рейсы</summary>
              <ul>
{{- range .Quotes}}
                <li>{{depart .}} · {{price .Price}}</li>
{{- end}}
              </ul>
            </details>
          </td>
{{- else}}
          <td class="empty" data-label="Минимальная цена">—</td>
{{- end}}
        </tr>
{{- end}}
      </tbody>
    </table>
  </div>
</body>
</html>
`
