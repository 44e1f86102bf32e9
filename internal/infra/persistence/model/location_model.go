package model

// LocationModel is the read projection of the 'locations' table with the
// geography column unpacked into longitude and latitude.
type LocationModel struct {
	ID        int64   `gorm:"primaryKey"`
	Address   string  `gorm:"type:varchar(100);not null"`
	Longitude float64 `gorm:"->;column:longitude"`
	Latitude  float64 `gorm:"->;column:latitude"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// NearbyLocationModel adds the distance computed by a radius query.
type NearbyLocationModel struct {
	LocationModel
	DistanceMeters float64 `gorm:"->;column:distance_meters"`
}

// VisitedLocationModel joins a visit with its location.
type VisitedLocationModel struct {
	LocationModel
	VisitID int64 `gorm:"->;column:visit_id"`
}
