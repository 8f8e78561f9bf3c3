package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
)

const (
	DefaultBMIRangeDays = 365
	MaxBMIRangeDays     = 5 * 366
)

type BMIRepository interface {
	Create(record *models.BMIRecord) error
	ListRange(userID uint, fromDay string, toDay string) ([]models.BMIRecord, error)
}

type BMIUserRepository interface {
	UpdateHeight(userID uint, heightCm float64) error
}

type BMIService struct {
	records  BMIRepository
	users    BMIUserRepository
	location *time.Location
}

func NewBMIService(records BMIRepository, users BMIUserRepository, location *time.Location) *BMIService {
	if location == nil {
		location = time.UTC
	}
	return &BMIService{records: records, users: users, location: location}
}

// Record stores a measurement. A zero heightCm reuses the user's last known
// height; a new height is remembered on the profile.
func (service *BMIService) Record(user models.User, rawDay string, heightCm float64, weightKg float64, now time.Time) (models.BMIRecord, error) {
	day, err := ParsePastDay(rawDay, now, service.location)
	if err != nil {
		return models.BMIRecord{}, err
	}

	if heightCm == 0 {
		heightCm = user.HeightCm
	}
	bmi, err := CalculateBMI(heightCm, weightKg)
	if err != nil {
		return models.BMIRecord{}, err
	}

	record := models.BMIRecord{
		UserID:   user.ID,
		Day:      FormatDay(day),
		HeightCm: heightCm,
		WeightKg: weightKg,
		BMI:      bmi,
		Category: BMICategory(bmi),
	}
	if err := service.records.Create(&record); err != nil {
		return models.BMIRecord{}, fmt.Errorf("save bmi record: %w", err)
	}
	if heightCm != user.HeightCm {
		if err := service.users.UpdateHeight(user.ID, heightCm); err != nil {
			return models.BMIRecord{}, fmt.Errorf("update height: %w", err)
		}
	}
	return record, nil
}

func (service *BMIService) History(userID uint, rawFrom string, rawTo string, now time.Time) (DayRange, []models.BMIRecord, error) {
	dayRange, err := ResolveDayRange(rawFrom, rawTo, now, service.location, DefaultBMIRangeDays, MaxBMIRangeDays)
	if err != nil {
		return DayRange{}, nil, err
	}
	records, err := service.records.ListRange(userID, dayRange.From, dayRange.To)
	if err != nil {
		return DayRange{}, nil, fmt.Errorf("load bmi history: %w", err)
	}
	return dayRange, records, nil
}
