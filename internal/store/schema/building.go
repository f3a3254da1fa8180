package schema

import "time"

// Building represents the buildings table - a managed property with one or more rental units
type Building struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the display name of the building
	Name string `gorm:"column:name;not null;default:''"`
	// Street is the street name of the building address
	Street string `gorm:"column:street;not null;default:''"`
	// HouseNo is the house number of the building address
	HouseNo string `gorm:"column:house_no;not null;default:''"`
	// Zip is the postal code
	Zip string `gorm:"column:zip;not null;default:''"`
	// City is the city of the building address
	City string `gorm:"column:city;not null;default:''"`
	// CreatedAt is the timestamp when this building was created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this building was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Building model
func (Building) TableName() string {
	return "buildings"
}
