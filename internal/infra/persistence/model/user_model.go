// Package model holds the GORM persistence models mirroring the relational schema.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. The application assigns string
// identifiers before insert, so there is no database-side default.
type UserModel struct {
	ID           string `gorm:"type:varchar(64);primary_key"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	Phone        string `gorm:"type:varchar(32)"`

	// Shipping address, flattened into the row.
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(100)"`
	State      string `gorm:"type:varchar(100)"`
	PostalCode string `gorm:"type:varchar(20)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
