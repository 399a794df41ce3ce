package rzd

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"sapsan-table/lib/restyutil"
)

const DefaultBaseUrl = "https://pass.rzd.ru/timetable/public/ru"

const (
	MoscowCode          = "2000000"
	SaintPetersburgCode = "2004000"
)

// fare class names as RZD spells them in car listings, lowercased
var DefaultFareClasses = []string{
	"эконом",
	"эконом+",
	"базовый",
	"вагон-бистро",
}

const (
	// regular long-distance trains on the route are numbered 700 and
	// below, Sapsan departures sit above that
	DefaultMinTrainNumber = 700
	// anything slower than 4h30m is not a Sapsan run
	DefaultMaxTravelMinutes = 4*60 + 30
)

type ClientOptions struct {
	BaseUrl          string
	OriginCode       string
	DestinationCode  string
	FareClasses      []string
	MinTrainNumber   int
	MaxTravelMinutes int
}

type Client struct {
	http    *resty.Client
	options ClientOptions
	classes map[string]struct{}
}

func NewClient(options ClientOptions) Client {
	if options.BaseUrl == "" {
		options.BaseUrl = DefaultBaseUrl
	}
	if options.OriginCode == "" {
		options.OriginCode = MoscowCode
	}
	if options.DestinationCode == "" {
		options.DestinationCode = SaintPetersburgCode
	}
	if len(options.FareClasses) == 0 {
		options.FareClasses = DefaultFareClasses
	}
	if options.MinTrainNumber == 0 {
		options.MinTrainNumber = DefaultMinTrainNumber
	}
	if options.MaxTravelMinutes == 0 {
		options.MaxTravelMinutes = DefaultMaxTravelMinutes
	}

	classes := map[string]struct{}{}
	for _, name := range options.FareClasses {
		classes[normalizeClass(name)] = struct{}{}
	}

	httpClient := resty.New()
	httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(
		httpClient.GetClient().Transport,
	)
	restyutil.InstrumentClient(httpClient, tracer, instrumentOutput)

	return Client{
		http:    httpClient,
		options: options,
		classes: classes,
	}
}

// Quote is one accepted Sapsan departure with the cheapest fare found
// among its allowed car classes.
type Quote struct {
	Train     string
	Departure time.Time
	Price     float64
}

// FetchDay queries the timetable endpoint for a single date and returns
// the accepted departures sorted by departure time. It issues exactly
// one request.
func (c Client) FetchDay(ctx context.Context, date time.Time) ([]Quote, error) {
	ctx, span := tracer.Start(ctx, "FetchDay")
	defer span.End()
	span.SetAttributes(attribute.String("date", date.Format(DateFormat)))

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"layer_id":   "5827",
			"dir":        "0",
			"tfl":        "3",
			"checkSeats": "1",
			"code0":      c.options.OriginCode,
			"code1":      c.options.DestinationCode,
			"dt0":        date.Format(DateFormat),
		}).
		Get(c.options.BaseUrl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch timetable")
		return nil, err
	}
	if res.IsError() {
		err := fmt.Errorf("timetable endpoint returned %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	var payload timetableResponse
	err = json.Unmarshal(res.Body(), &payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse json response")
		return nil, fmt.Errorf("decode timetable response: %w", err)
	}

	var quotes []Quote
	for _, segment := range payload.Routes {
		for _, train := range segment.List {
			quote, ok := c.acceptTrain(segment, train)
			if !ok {
				continue
			}
			quotes = append(quotes, quote)
		}
	}

	slices.SortFunc(quotes, func(a, b Quote) int {
		au := a.Departure.Unix()
		bu := b.Departure.Unix()
		if au < bu {
			return -1
		}
		if au > bu {
			return 1
		}
		return 0
	})

	span.SetAttributes(attribute.Int("quotes", len(quotes)))
	return quotes, nil
}

// applies the Sapsan filters to a single timetable entry
func (c Client) acceptTrain(segment routeSegment, train trainEntry) (Quote, bool) {
	number := trainNumber(train.Number)
	if number < 0 || number <= c.options.MinTrainNumber {
		return Quote{}, false
	}

	travelTime := train.TimeInWay
	if travelTime == nil {
		travelTime = train.TimeInWayMin
	}
	minutes, ok := parseTravelMinutes(travelTime)
	if !ok || minutes > c.options.MaxTravelMinutes {
		return Quote{}, false
	}

	dateStr := train.Date
	if dateStr == "" {
		dateStr = segment.Date
	}
	if dateStr == "" || train.Departure == "" {
		return Quote{}, false
	}
	departure, err := combineDateTime(dateStr, train.Departure)
	if err != nil {
		return Quote{}, false
	}

	price, ok := c.minFare(train.Cars)
	if !ok {
		return Quote{}, false
	}

	return Quote{
		Train:     train.Number,
		Departure: departure,
		Price:     price,
	}, true
}

// cheapest tariff among cars whose class is in the allowed set
func (c Client) minFare(cars []carEntry) (float64, bool) {
	var min float64
	found := false

	for _, car := range cars {
		if !c.classAllowed(car) {
			continue
		}

		var raw any
		for _, candidate := range []any{car.Tariff, car.TariffValue, car.TariffFull} {
			if candidate != nil {
				raw = candidate
				break
			}
		}
		if raw == nil {
			continue
		}

		price, ok := parsePrice(raw)
		if !ok {
			continue
		}
		if !found || price < min {
			min = price
			found = true
		}
	}

	return min, found
}

// RZD is not consistent about which field carries the car class name
func (c Client) classAllowed(car carEntry) bool {
	for _, name := range []string{
		car.Service, car.Type, car.TariffType, car.TypeLoc, car.Category,
	} {
		if name == "" {
			continue
		}
		_, ok := c.classes[normalizeClass(name)]
		if ok {
			return true
		}
	}
	return false
}
