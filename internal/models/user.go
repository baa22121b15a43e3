package models

import "gorm.io/gorm"

// Email is stored trimmed and lowercased; lookups normalize the same way.
type User struct {
	gorm.Model
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"not null"`
}
