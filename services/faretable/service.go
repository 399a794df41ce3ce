package faretable

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sapsan-table/lib/scrapers/rzd"
)

// DayFare is one calendar date with every accepted Sapsan departure and
// the cheapest fare among them. HasPrice is false when the date produced
// no accepted departure at all.
type DayFare struct {
	Date     time.Time
	Quotes   []rzd.Quote
	MinPrice float64
	HasPrice bool
}

type Service struct {
	scraper rzd.Client
}

func NewService(scraper rzd.Client) Service {
	return Service{scraper: scraper}
}

// FetchRange retrieves fares for `days` consecutive dates starting at
// `start`, strictly one request at a time in ascending date order. The
// result preserves that order exactly. A failure on any date fails the
// whole range, there are no retries.
func (s Service) FetchRange(ctx context.Context, start time.Time, days int) ([]DayFare, error) {
	ctx, span := tracer.Start(ctx, "FetchRange")
	defer span.End()
	span.SetAttributes(
		attribute.String("start", start.Format(rzd.DateFormat)),
		attribute.Int("days", days),
	)

	if days < 1 {
		return nil, fmt.Errorf("day count must be at least 1, got %d", days)
	}

	out := make([]DayFare, 0, days)
	for offset := 0; offset < days; offset++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		date := start.AddDate(0, 0, offset)

		quotes, err := s.scraper.FetchDay(ctx, date)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch day")
			return nil, fmt.Errorf("fetch fares for %s: %w", date.Format(rzd.DateFormat), err)
		}

		day := DayFare{Date: date, Quotes: quotes}
		for _, quote := range quotes {
			if !day.HasPrice || quote.Price < day.MinPrice {
				day.MinPrice = quote.Price
				day.HasPrice = true
			}
		}

		slog.InfoContext(
			ctx, "fetched day",
			"date", date.Format(rzd.DateFormat),
			"departures", len(quotes),
			"has_price", day.HasPrice,
		)
		out = append(out, day)
	}

	return out, nil
}
