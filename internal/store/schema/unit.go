package schema

import "time"

// Unit represents the units table - a rental unit (apartment) within a building
type Unit struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BuildingID references the building the unit belongs to
	BuildingID uint64 `gorm:"column:building_id;not null;index:idx_units_building_id"`
	// Label is the human-readable unit designation, e.g. "EG links"
	Label string `gorm:"column:label;not null;default:''"`
	// Floor is the free-text floor designation
	Floor string `gorm:"column:floor;not null;default:''"`
	// CreatedAt is the timestamp when this unit was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this unit was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	// Associations
	Building Building `gorm:"foreignKey:BuildingID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Unit model
func (Unit) TableName() string {
	return "units"
}
