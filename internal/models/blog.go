package models

import "time"

type BlogPost struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Summary     string    `gorm:"not null;default:''" json:"summary"`
	Body        string    `gorm:"not null;default:''" json:"body,omitempty"`
	PublishedAt time.Time `gorm:"not null" json:"published_at"`
	CreatedAt   time.Time `json:"-"`
}
