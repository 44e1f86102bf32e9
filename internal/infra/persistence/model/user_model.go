// Package model holds the GORM persistence models. Geography columns are read
// and written through raw PostGIS SQL, so they have no struct field here.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(25);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(300);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
