package models

import "time"

type BMIRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Day       string    `gorm:"not null" json:"day"`
	HeightCm  float64   `gorm:"not null" json:"height_cm"`
	WeightKg  float64   `gorm:"not null" json:"weight_kg"`
	BMI       float64   `gorm:"column:bmi;not null" json:"bmi"`
	Category  string    `gorm:"not null" json:"category"`
	CreatedAt time.Time `json:"-"`
}

func (BMIRecord) TableName() string {
	return "bmi_records"
}
