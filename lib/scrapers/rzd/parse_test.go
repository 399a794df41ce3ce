package rzd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sapsan-table/lib/timezone"
)

func TestTrainNumber(t *testing.T) {
	cases := []struct {
		raw      string
		expected int
	}{
		{"757А", 757},
		{"775", 775},
		{"058А", 58},
		{"СПБ", -1},
		{"", -1},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, trainNumber(test.raw), test.raw)
	}
}

func TestParseTravelMinutes(t *testing.T) {
	cases := []struct {
		raw      any
		expected int
		ok       bool
	}{
		{"4:05", 245, true},
		{"4:05:00", 245, true},
		{"245", 245, true},
		{float64(230), 230, true},
		{nil, 0, false},
		{"", 0, false},
		{"later", 0, false},
		{"4:05:00:00", 0, false},
	}

	for _, test := range cases {
		minutes, ok := parseTravelMinutes(test.raw)
		require.Equal(t, test.ok, ok, test.raw)
		if ok {
			require.Equal(t, test.expected, minutes, test.raw)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw      any
		expected float64
		ok       bool
	}{
		{float64(3990), 3990, true},
		{"4100.0", 4100, true},
		{"free", 0, false},
		{nil, 0, false},
	}

	for _, test := range cases {
		price, ok := parsePrice(test.raw)
		require.Equal(t, test.ok, ok, test.raw)
		if ok {
			require.Equal(t, test.expected, price, test.raw)
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	expected := time.Date(2026, 1, 2, 5, 40, 0, 0, timezone.Location)

	dt, err := combineDateTime("02.01.2026", "05:40")
	require.NoError(t, err)
	require.Equal(t, expected, dt)

	// some responses use ISO dates
	dt, err = combineDateTime("2026-01-02", "05:40")
	require.NoError(t, err)
	require.Equal(t, expected, dt)

	_, err = combineDateTime("январь", "05:40")
	require.Error(t, err)

	_, err = combineDateTime("02.01.2026", "early")
	require.Error(t, err)
}

func TestNormalizeClass(t *testing.T) {
	require.Equal(t, "эконом+", normalizeClass(" ЭКОНОМ+ \n"))
	require.Equal(t, "вагон-бистро", normalizeClass("Вагон-бистро"))
}
