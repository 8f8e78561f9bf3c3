package models

import "time"

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	DisplayName        string    `gorm:"not null;default:''" json:"display_name"`
	HeightCm           float64   `gorm:"not null;default:0" json:"height_cm"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"must_change_password"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time `json:"-"`
}
