package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Protocol represents the protocols table - a handover inspection record of a unit
type Protocol struct {
	// ID is the internal database primary key; it defines the original record order
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// UnitID references the inspected unit; protocols outlive deleted units
	UnitID uint64 `gorm:"column:unit_id;not null;index:idx_protocols_unit_id"`
	// Kind is the free-text protocol type label (einzug, auszug, zwischen, ...)
	Kind string `gorm:"column:kind;not null;default:''"`
	// Payload is the semi-structured protocol document
	Payload datatypes.JSON `gorm:"column:payload"`
	// CreatedAt is the timestamp when the protocol was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime;index:idx_protocols_created_at"`
	// UpdatedAt is the timestamp when the protocol was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Protocol model
func (Protocol) TableName() string {
	return "protocols"
}

// ProtocolPhoto represents the protocol_photos table - photos attached to a protocol
type ProtocolPhoto struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProtocolID references the protocol the photo belongs to
	ProtocolID uint64 `gorm:"column:protocol_id;not null;index:idx_protocol_photos_protocol_id"`
	// FileName is the stored file name of the photo
	FileName string `gorm:"column:file_name;not null"`
	// CreatedAt is the timestamp when the photo was uploaded
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`

	// Associations
	Protocol Protocol `gorm:"foreignKey:ProtocolID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ProtocolPhoto model
func (ProtocolPhoto) TableName() string {
	return "protocol_photos"
}

// Models lists every model in migration order
func Models() []any {
	return []any{&Building{}, &Unit{}, &Protocol{}, &ProtocolPhoto{}}
}
