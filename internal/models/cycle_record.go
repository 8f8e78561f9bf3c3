package models

import "time"

const (
	DefaultCycleLength = 28
	MaxCycleLength     = 90
)

// DayLayout is the storage and wire format for calendar days.
const DayLayout = "2006-01-02"

// CycleRecord is the start of the most recently logged cycle. StartDate is kept
// as text so that a corrupt value survives the round trip and can be reported
// as invalid instead of failing the row scan.
type CycleRecord struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	StartDate         string    `gorm:"not null;default:''" json:"start_date"`
	AverageLengthDays int       `gorm:"not null;default:28" json:"average_length_days"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"-"`
}
