package domain

import (
	"encoding/json"
	"time"
)

// ProtocolRecord is a normalized protocol row as loaded from the store
type ProtocolRecord struct {
	ID         uint64
	UnitID     uint64
	BuildingID uint64
	// Kind is the literal label stored with the protocol; it may be unknown
	Kind       string
	CreatedAt  time.Time
	Payload    json.RawMessage
	PhotoCount int
}

// Building is a building row with its unit count
type Building struct {
	ID        uint64
	Name      string
	Street    string
	HouseNo   string
	Zip       string
	City      string
	UnitCount int
}

// Snapshot is the read-only input of a single report computation.
// Protocols are ordered by ID.
type Snapshot struct {
	Protocols []ProtocolRecord
	Buildings []Building
}
