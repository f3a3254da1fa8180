package stats

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Address is the address block of a protocol payload
type Address struct {
	City    string
	Street  string
	HouseNo string
}

// Complete reports whether city, street and house number are all present
func (a Address) Complete() bool {
	return a.City != "" && a.Street != "" && a.HouseNo != ""
}

// Room is a single room entry of a protocol payload
type Room struct {
	Type string
	Name string
}

// MeterReading is a meter entry as recorded: the raw text and, when the
// text is a finite number, its parsed value.
type MeterReading struct {
	Raw   string
	Value *float64
}

// Payload is the decoded protocol payload. Every field is optional; absent or
// malformed fields decode to their zero value.
type Payload struct {
	// Timestamp is the raw override timestamp, empty when absent
	Timestamp      string
	Address        Address
	Rooms          []Room
	Meters         map[string]MeterReading
	KeyCount       int
	PrivacyConsent bool
}

// DecodePayload decodes a raw protocol payload.
// The second return value is false when the payload is missing or is not a JSON object;
// individual fields that fail to decode are treated as absent.
func DecodePayload(raw []byte) (Payload, bool) {
	var p Payload
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return p, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return p, false
	}

	if s, ok := asString(fields["timestamp"]); ok {
		p.Timestamp = s
	}

	var address map[string]json.RawMessage
	if json.Unmarshal(fields["address"], &address) == nil {
		p.Address.City, _ = asString(address["city"])
		p.Address.Street, _ = asString(address["street"])
		p.Address.HouseNo, _ = asString(address["house_no"])
	}

	var rooms []json.RawMessage
	if json.Unmarshal(fields["rooms"], &rooms) == nil {
		for _, r := range rooms {
			if isNull(r) {
				continue
			}
			room := Room{}
			var entry map[string]json.RawMessage
			if json.Unmarshal(r, &entry) == nil {
				room.Type, _ = asString(entry["type"])
				room.Name, _ = asString(entry["name"])
			}
			p.Rooms = append(p.Rooms, room)
		}
	}

	var meters map[string]json.RawMessage
	if json.Unmarshal(fields["meters"], &meters) == nil && len(meters) > 0 {
		p.Meters = make(map[string]MeterReading, len(meters))
		for key, value := range meters {
			p.Meters[key] = decodeMeterReading(value)
		}
	}

	var keys []json.RawMessage
	if json.Unmarshal(fields["keys"], &keys) == nil {
		for _, k := range keys {
			if !isNull(k) {
				p.KeyCount++
			}
		}
	}

	var meta map[string]json.RawMessage
	if json.Unmarshal(fields["meta"], &meta) == nil {
		p.PrivacyConsent = asBool(meta["privacy_consent"])
	}

	return p, true
}

// decodeMeterReading accepts a string, a number, or an object with a value field
func decodeMeterReading(raw json.RawMessage) MeterReading {
	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) == nil && obj != nil {
		return decodeMeterReading(obj["value"])
	}

	text, _ := asString(raw)
	reading := MeterReading{Raw: text}
	if v, ok := ParseNumber(text); ok {
		reading.Value = &v
	}
	return reading
}

// HasMeterValue reports whether at least one meter entry carries a non-empty value
func (p Payload) HasMeterValue() bool {
	for _, m := range p.Meters {
		if m.Raw != "" {
			return true
		}
	}
	return false
}

// asString returns the trimmed text of a JSON string or number
func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func asBool(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	s, ok := asString(raw)
	if !ok {
		return false
	}
	switch strings.ToLower(s) {
	case "true", "yes", "ja", "on":
		return true
	}
	n, err := strconv.ParseFloat(s, 64)
	return err == nil && n == 1
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
