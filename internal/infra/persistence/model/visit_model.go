package model

import "time"

// VisitModel mirrors the 'visits' table. (user_id, location_id) is unique.
type VisitModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null;uniqueIndex:uq_visits_user_location"`
	LocationID int64     `gorm:"not null;uniqueIndex:uq_visits_user_location"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
