package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{name: "plain integer", input: "1234", expected: 1234, ok: true},
		{name: "dot decimal", input: "12.5", expected: 12.5, ok: true},
		{name: "comma decimal", input: "12,5", expected: 12.5, ok: true},
		{name: "spaces as thousands separator", input: " 1 234,5 ", expected: 1234.5, ok: true},
		{name: "non-breaking space", input: "1\u00a0000", expected: 1000, ok: true},
		{name: "negative", input: "-3,0", expected: -3, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "only spaces", input: "   ", ok: false},
		{name: "text", input: "abgelesen", ok: false},
		{name: "unit suffix", input: "12 kWh", ok: false},
		{name: "two separators", input: "1,2,3", ok: false},
		{name: "german thousands dot", input: "1.234,5", ok: false},
		{name: "hexadecimal", input: "0x10", ok: false},
		{name: "not a number", input: "NaN", ok: false},
		{name: "overflow to infinity", input: "1e400", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, v, 1e-9)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		berlin = time.FixedZone("CET", 3600)
	}

	tests := []struct {
		name     string
		input    string
		loc      *time.Location
		expected time.Time
		ok       bool
	}{
		{name: "date only", input: "2024-01-10", expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "date and minutes", input: "2024-01-10T08:30", expected: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), ok: true},
		{name: "date and seconds", input: "2024-01-10T08:30:15", expected: time.Date(2024, 1, 10, 8, 30, 15, 0, time.UTC), ok: true},
		{name: "space instead of T", input: "2024-01-10 08:30", expected: time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC), ok: true},
		{name: "surrounding whitespace", input: "  2024-01-10  ", expected: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "location applied", input: "2024-01-10T08:30", loc: berlin, expected: time.Date(2024, 1, 10, 8, 30, 0, 0, berlin), ok: true},
		{name: "fractional seconds", input: "2024-01-10T08:30:15.5", ok: false},
		{name: "comma fractional seconds", input: "2024-01-10T08:30:15,999", ok: false},
		{name: "trailing zone", input: "2024-01-10T08:30:15Z", ok: false},
		{name: "german date format", input: "10.01.2024", ok: false},
		{name: "invalid month", input: "2024-13-01", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := ParseTimestamp(tt.input, tt.loc)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.expected.Equal(v), "expected %s, got %s", tt.expected, v)
			}
		})
	}
}

func TestWholeDays(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 182, wholeDays(start, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, wholeDays(start, start.Add(23*time.Hour)))
	assert.Equal(t, 1, wholeDays(start, start.Add(47*time.Hour)))
	assert.Equal(t, 0, wholeDays(start, start.Add(-72*time.Hour)))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 16.7, round1(100.0/6))
	assert.Equal(t, 33.3, round1(200.0/6))
	assert.Equal(t, 175.1, round2(350.2/2))
	assert.Equal(t, -10.0, round2(-10))
}
