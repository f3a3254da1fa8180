package stats

import (
	"time"

	"github.com/handoverhq/tenancy-stats/internal/domain"
)

// Event is a protocol normalized for sequencing and bucketing
type Event struct {
	ProtocolID uint64
	UnitID     uint64
	BuildingID uint64
	// Label is the literal kind label of the protocol
	Label string
	// Kind is the canonical kind; it is only meaningful when Known is true
	Kind  domain.ProtocolKind
	Known bool
	// EffectiveTime is the payload override timestamp when parseable, else CreatedAt
	EffectiveTime time.Time
	CreatedAt     time.Time
	Meters        map[domain.MeterKey]*float64
	PhotoCount    int
	Payload       Payload
	// PayloadOK is false when the payload was missing or malformed
	PayloadOK bool
	// TimestampOverridden is true when EffectiveTime came from the payload
	TimestampOverridden bool

	// seq is the position of the record in the snapshot, used to break ties
	seq int
}

// Extract converts a protocol record into an event
func Extract(rec domain.ProtocolRecord, seq int, loc *time.Location) Event {
	if loc == nil {
		loc = time.UTC
	}
	payload, ok := DecodePayload(rec.Payload)
	kind, known := domain.ParseProtocolKind(rec.Kind)

	ev := Event{
		ProtocolID:    rec.ID,
		UnitID:        rec.UnitID,
		BuildingID:    rec.BuildingID,
		Label:         rec.Kind,
		Kind:          kind,
		Known:         known,
		EffectiveTime: rec.CreatedAt,
		CreatedAt:     rec.CreatedAt,
		PhotoCount:    rec.PhotoCount,
		Payload:       payload,
		PayloadOK:     ok,
		seq:           seq,
	}

	if t, ok := ParseTimestamp(payload.Timestamp, loc); ok {
		ev.EffectiveTime = t
		ev.TimestampOverridden = true
	}

	ev.Meters = make(map[domain.MeterKey]*float64, len(domain.MeterKeys))
	for _, key := range domain.MeterKeys {
		if reading, ok := payload.Meters[string(key)]; ok && reading.Value != nil {
			v := *reading.Value
			ev.Meters[key] = &v
		} else {
			ev.Meters[key] = nil
		}
	}

	return ev
}
