package model

import (
	"encoding/json"
	"strconv"
)

// Column names every sensor row is expected to carry.
const (
	ReadingIDColumn        = "id"
	ReadingTimestampColumn = "timestamp"
)

// Reading is a single row of the sensor table keyed by column name.
// Columns other than id and timestamp are passed through untouched.
type Reading map[string]any

// ID returns the numeric row identifier, which orders readings by recency.
func (r Reading) ID() (int64, bool) {
	switch v := r[ReadingIDColumn].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

// Timestamp returns the raw stored timestamp value, if present and non-null.
func (r Reading) Timestamp() (any, bool) {
	v, ok := r[ReadingTimestampColumn]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// SetTimestamp replaces the timestamp column with its display form.
func (r Reading) SetTimestamp(formatted string) {
	r[ReadingTimestampColumn] = formatted
}
