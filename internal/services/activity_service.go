package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
)

const (
	DefaultActivityRangeDays = 7
	MaxActivityRangeDays     = 366
)

var ErrActivityInvalid = errors.New("invalid activity values")

type ActivityRepository interface {
	Upsert(metric *models.ActivityMetric) error
	ListRange(userID uint, fromDay string, toDay string) ([]models.ActivityMetric, error)
}

type ActivityInput struct {
	Steps        int     `json:"steps"`
	Calories     float64 `json:"calories"`
	HeartRate    int     `json:"heart_rate"`
	SleepMinutes int     `json:"sleep_minutes"`
}

// ActivitySummary aggregates a day range. Heart rate and sleep averages only
// count days that carry a reading.
type ActivitySummary struct {
	Range               DayRange `json:"range"`
	Days                int      `json:"days"`
	TotalSteps          int      `json:"total_steps"`
	TotalCalories       float64  `json:"total_calories"`
	AverageSteps        float64  `json:"average_steps"`
	AverageHeartRate    float64  `json:"average_heart_rate"`
	AverageSleepMinutes float64  `json:"average_sleep_minutes"`
}

type ActivityService struct {
	metrics  ActivityRepository
	location *time.Location
}

func NewActivityService(metrics ActivityRepository, location *time.Location) *ActivityService {
	if location == nil {
		location = time.UTC
	}
	return &ActivityService{metrics: metrics, location: location}
}

func ValidateActivityInput(input ActivityInput) error {
	switch {
	case input.Steps < 0 || input.Steps > 200000:
		return ErrActivityInvalid
	case input.Calories < 0 || input.Calories > 20000 || math.IsNaN(input.Calories):
		return ErrActivityInvalid
	case input.HeartRate != 0 && (input.HeartRate < 20 || input.HeartRate > 250):
		return ErrActivityInvalid
	case input.SleepMinutes < 0 || input.SleepMinutes > 24*60:
		return ErrActivityInvalid
	}
	return nil
}

func (service *ActivityService) Record(userID uint, rawDay string, input ActivityInput, now time.Time) (models.ActivityMetric, error) {
	day, err := ParsePastDay(rawDay, now, service.location)
	if err != nil {
		return models.ActivityMetric{}, err
	}
	if err := ValidateActivityInput(input); err != nil {
		return models.ActivityMetric{}, err
	}

	metric := models.ActivityMetric{
		UserID:       userID,
		Day:          FormatDay(day),
		Steps:        input.Steps,
		Calories:     input.Calories,
		HeartRate:    input.HeartRate,
		SleepMinutes: input.SleepMinutes,
	}
	if err := service.metrics.Upsert(&metric); err != nil {
		return models.ActivityMetric{}, fmt.Errorf("save activity: %w", err)
	}
	return metric, nil
}

func (service *ActivityService) Summary(userID uint, rawFrom string, rawTo string, now time.Time) (ActivitySummary, []models.ActivityMetric, error) {
	dayRange, err := ResolveDayRange(rawFrom, rawTo, now, service.location, DefaultActivityRangeDays, MaxActivityRangeDays)
	if err != nil {
		return ActivitySummary{}, nil, err
	}

	metrics, err := service.metrics.ListRange(userID, dayRange.From, dayRange.To)
	if err != nil {
		return ActivitySummary{}, nil, fmt.Errorf("load activity: %w", err)
	}
	return SummarizeActivity(dayRange, metrics), metrics, nil
}

func (service *ActivityService) Today(userID uint, now time.Time) (models.ActivityMetric, error) {
	today := FormatDay(DateAtLocation(now, service.location))
	metrics, err := service.metrics.ListRange(userID, today, today)
	if err != nil {
		return models.ActivityMetric{}, fmt.Errorf("load activity: %w", err)
	}
	if len(metrics) == 0 {
		return models.ActivityMetric{UserID: userID, Day: today}, nil
	}
	return metrics[0], nil
}

func SummarizeActivity(dayRange DayRange, metrics []models.ActivityMetric) ActivitySummary {
	summary := ActivitySummary{Range: dayRange, Days: len(metrics)}

	heartRateTotal, heartRateDays := 0, 0
	sleepTotal, sleepDays := 0, 0
	for _, metric := range metrics {
		summary.TotalSteps += metric.Steps
		summary.TotalCalories += metric.Calories
		if metric.HeartRate > 0 {
			heartRateTotal += metric.HeartRate
			heartRateDays++
		}
		if metric.SleepMinutes > 0 {
			sleepTotal += metric.SleepMinutes
			sleepDays++
		}
	}

	if summary.Days > 0 {
		summary.AverageSteps = roundTo(float64(summary.TotalSteps)/float64(summary.Days), 1)
	}
	if heartRateDays > 0 {
		summary.AverageHeartRate = roundTo(float64(heartRateTotal)/float64(heartRateDays), 1)
	}
	if sleepDays > 0 {
		summary.AverageSleepMinutes = roundTo(float64(sleepTotal)/float64(sleepDays), 1)
	}
	summary.TotalCalories = roundTo(summary.TotalCalories, 1)
	return summary
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
