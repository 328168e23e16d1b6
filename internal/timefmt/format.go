package timefmt

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // Asia/Jakarta must resolve on images without a zoneinfo database
)

// Layout is the wall-clock layout used in API responses.
const Layout = "2006-01-02 15:04:05"

// Zone is the fixed display zone for sensor timestamps.
const Zone = "Asia/Jakarta"

var ErrUnsupportedTimestamp = errors.New("unsupported timestamp value")

// Accepted input layouts. Strings without an offset are read as UTC.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02T15:04:05-07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation(Zone)
	if err != nil {
		// WIB has no DST, a fixed offset is equivalent.
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// FormatTime renders t as Asia/Jakarta wall-clock time.
func FormatTime(t time.Time) string {
	return t.In(location).Format(Layout)
}

// Format converts a stored timestamp value into its display form.
// It accepts time.Time values from SQL drivers and strings from JSON APIs.
func Format(v any) (string, error) {
	switch ts := v.(type) {
	case time.Time:
		return FormatTime(ts), nil
	case *time.Time:
		if ts == nil {
			return "", ErrUnsupportedTimestamp
		}
		return FormatTime(*ts), nil
	case string:
		t, err := Parse(ts)
		if err != nil {
			return "", err
		}
		return FormatTime(t), nil
	case []byte:
		t, err := Parse(string(ts))
		if err != nil {
			return "", err
		}
		return FormatTime(t), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedTimestamp, v)
	}
}

// Parse reads a stored timestamp string in any of the accepted layouts.
func Parse(s string) (time.Time, error) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnsupportedTimestamp, s)
}
