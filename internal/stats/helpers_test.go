package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/handoverhq/tenancy-stats/internal/domain"
)

// mustTime parses a UTC timestamp in the payload format
func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, ok := ParseTimestamp(value, time.UTC)
	if !ok {
		t.Fatalf("invalid test timestamp %q", value)
	}
	return ts
}

// buildRecord creates a protocol record created at the given time
func buildRecord(t *testing.T, id, unitID, buildingID uint64, kind, created string, payload map[string]any) domain.ProtocolRecord {
	t.Helper()
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		raw = b
	}
	return domain.ProtocolRecord{
		ID:         id,
		UnitID:     unitID,
		BuildingID: buildingID,
		Kind:       kind,
		CreatedAt:  mustTime(t, created),
		Payload:    raw,
	}
}

// meterPayload builds a payload with meter readings
func meterPayload(readings map[string]any) map[string]any {
	return map[string]any{"meters": readings}
}

// extractAll converts records into events in the given order
func extractAll(records ...domain.ProtocolRecord) []*Event {
	events := make([]*Event, 0, len(records))
	for i, rec := range records {
		ev := Extract(rec, i, time.UTC)
		events = append(events, &ev)
	}
	return events
}
