package stats

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses YYYY-MM-DD[THH:MM[:SS]] in loc. A single space is accepted in place of T.
func ParseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	value = strings.Replace(value, " ", "T", 1)
	for _, layout := range timestampLayouts {
		// layouts are fixed width; a longer value carries fractional seconds or a zone
		if len(value) != len(layout) {
			continue
		}
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseNumber parses a free-text meter value. Whitespace is removed and a comma
// is read as the decimal separator. Only finite plain decimal numbers are accepted.
func ParseNumber(value string) (float64, bool) {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r == ' ' || r == '\t' || r == '\u00a0' || r == '\u202f':
			continue
		case r == ',':
			b.WriteRune('.')
		case (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
			b.WriteRune(r)
		default:
			return 0, false
		}
	}
	s := b.String()
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// round rounds half away from zero to the given number of decimals
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func round1(v float64) float64 { return round(v, 1) }

func round2(v float64) float64 { return round(v, 2) }

// floatPtr returns a pointer to v
func floatPtr(v float64) *float64 {
	return &v
}

// wholeDays returns the number of complete 24h periods between start and end, never negative
func wholeDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
