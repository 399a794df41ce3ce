package rzd

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"sapsan-table/lib/timezone"
)

// DateFormat is the DD.MM.YYYY format the timetable endpoint speaks.
const DateFormat = "02.01.2006"

// numeric part of a train number like "757А", -1 when there is none
func trainNumber(number string) int {
	digits := strings.Builder{}
	for _, c := range number {
		if unicode.IsDigit(c) {
			digits.WriteRune(c)
		}
	}
	if digits.Len() == 0 {
		return -1
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return -1
	}
	return n
}

// travel time arrives as "4:05", "4:05:00", "245" or a bare number
func parseTravelMinutes(raw any) (int, bool) {
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		return int(v), true
	case string:
		if v == "" {
			return 0, false
		}
		if !strings.Contains(v, ":") {
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, false
			}
			return n, true
		}
		parts := strings.Split(v, ":")
		if len(parts) != 2 && len(parts) != 3 {
			return 0, false
		}
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, false
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0, false
		}
		return hours*60 + minutes, true
	default:
		return 0, false
	}
}

func parsePrice(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return price, true
	default:
		return 0, false
	}
}

// dates come in DD.MM.YYYY, some responses use ISO instead
func combineDateTime(dateStr, timeStr string) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, dateStr, timezone.Location)
	if err != nil {
		date, err = time.ParseInLocation("2006-01-02", dateStr, timezone.Location)
		if err != nil {
			return time.Time{}, err
		}
	}

	clock, err := time.Parse("15:04", timeStr)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		timezone.Location,
	), nil
}

func normalizeClass(name string) string {
	return strings.ToLower(strings.Trim(name, " \t\n"))
}
