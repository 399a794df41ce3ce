package faretable

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sapsan-table/lib/scrapers/rzd"
	"sapsan-table/lib/telemetry"
	"sapsan-table/lib/timezone"
)

func fareDay(price float64) string {
	return fmt.Sprintf(`{
		"tp": [
			{
				"date0": "",
				"list": [
					{
						"number": "757А",
						"timeInWay": "3:45",
						"time0": "05:40",
						"date0": "%%s",
						"cars": [{"type": "Эконом", "tariff": %v}]
					}
				]
			}
		]
	}`, price)
}

// serves a canned price per requested dt0; dates outside the map come
// back with an empty timetable
func fixtureServer(t testing.TB, prices map[string]float64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("dt0")
		w.Header().Set("Content-Type", "application/json")

		price, ok := prices[date]
		if !ok {
			w.Write([]byte(`{"tp": []}`))
			return
		}
		fmt.Fprintf(w, fareDay(price), date)
	}))
}

func TestFetchRange(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:faretable")
	defer cleanup()

	srv := fixtureServer(t, map[string]float64{
		"02.01.2026": 3990,
		"03.01.2026": 2790,
		"04.01.2026": 4500,
	})
	defer srv.Close()

	svc := NewService(rzd.NewClient(rzd.ClientOptions{BaseUrl: srv.URL}))
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, timezone.Location)

	fares, err := svc.FetchRange(context.Background(), start, 3)
	require.NoError(t, err)
	require.Len(t, fares, 3)

	expectedPrices := []float64{3990, 2790, 4500}
	for i, day := range fares {
		require.Equal(t, start.AddDate(0, 0, i), day.Date)
		require.True(t, day.HasPrice)
		require.Equal(t, expectedPrices[i], day.MinPrice)
		require.Len(t, day.Quotes, 1)
	}
}

func TestFetchRangeKeepsEmptyDays(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:faretable")
	defer cleanup()

	srv := fixtureServer(t, map[string]float64{
		"02.01.2026": 3990,
		"04.01.2026": 4500,
	})
	defer srv.Close()

	svc := NewService(rzd.NewClient(rzd.ClientOptions{BaseUrl: srv.URL}))
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, timezone.Location)

	fares, err := svc.FetchRange(context.Background(), start, 3)
	require.NoError(t, err)
	require.Len(t, fares, 3)

	// the sold-out middle date still occupies its row
	require.True(t, fares[0].HasPrice)
	require.False(t, fares[1].HasPrice)
	require.Equal(t, start.AddDate(0, 0, 1), fares[1].Date)
	require.True(t, fares[2].HasPrice)
}

func TestFetchRangeFailureNamesDate(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:faretable")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("dt0") == "03.01.2026" {
			http.Error(w, "overloaded", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"tp": []}`))
	}))
	defer srv.Close()

	svc := NewService(rzd.NewClient(rzd.ClientOptions{BaseUrl: srv.URL}))
	start := time.Date(2026, 1, 2, 0, 0, 0, 0, timezone.Location)

	_, err := svc.FetchRange(context.Background(), start, 3)
	require.ErrorContains(t, err, "03.01.2026")
}

func TestFetchRangeRejectsBadDayCount(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:faretable")
	defer cleanup()

	svc := NewService(rzd.NewClient(rzd.ClientOptions{}))
	_, err := svc.FetchRange(context.Background(), timezone.Now(), 0)
	require.Error(t, err)
}

func TestFetchRangeHonorsCancellation(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:faretable")
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(rzd.NewClient(rzd.ClientOptions{}))
	_, err := svc.FetchRange(ctx, timezone.Now(), 3)
	require.ErrorIs(t, err, context.Canceled)
}
