package models

import "time"

type ActivityMetric struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UserID       uint      `gorm:"not null;uniqueIndex:uidx_activity_user_day" json:"-"`
	Day          string    `gorm:"not null;uniqueIndex:uidx_activity_user_day" json:"day"`
	Steps        int       `gorm:"not null;default:0" json:"steps"`
	Calories     float64   `gorm:"not null;default:0" json:"calories"`
	HeartRate    int       `gorm:"not null;default:0" json:"heart_rate"`
	SleepMinutes int       `gorm:"not null;default:0" json:"sleep_minutes"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
