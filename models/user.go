package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a back-office account. The password hash never serializes.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FullName string `gorm:"size:120" json:"full_name"`
	Email    string `gorm:"size:120;uniqueIndex" json:"email"`
	Password string `gorm:"size:255" json:"-"`
	IsAdmin  bool   `gorm:"column:is_admin;default:false" json:"is_admin"`
}
