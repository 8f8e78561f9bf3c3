package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/vitalis/internal/logging"
	"github.com/terraincognita07/vitalis/internal/models"
	"go.uber.org/zap"
)

var (
	ErrCycleStartInvalid  = errors.New("invalid cycle start date")
	ErrCycleStartInFuture = errors.New("cycle start date is in the future")
	ErrCycleLengthInvalid = errors.New("invalid cycle length")
	ErrCycleStartTooOld   = errors.New("cycle start date is too far in the past")
)

// MaxCycleStartAgeDays bounds how far before today a new cycle start may lie.
const MaxCycleStartAgeDays = 2 * 366

type CycleRecordRepository interface {
	Create(record *models.CycleRecord) error
	LatestForUser(userID uint) (models.CycleRecord, bool, error)
}

type CycleService struct {
	records  CycleRecordRepository
	location *time.Location
	logger   *zap.Logger
}

func NewCycleService(records CycleRecordRepository, location *time.Location, logger *zap.Logger) *CycleService {
	if location == nil {
		location = time.UTC
	}
	return &CycleService{records: records, location: location, logger: logging.OrNop(logger)}
}

// LogCycleStart records a new cycle. averageLength 0 stores the default length.
func (service *CycleService) LogCycleStart(userID uint, rawStart string, averageLength int, now time.Time) (models.CycleRecord, error) {
	start, err := ParsePastDay(rawStart, now, service.location)
	if errors.Is(err, ErrDayInFuture) {
		return models.CycleRecord{}, ErrCycleStartInFuture
	}
	if err != nil {
		return models.CycleRecord{}, ErrCycleStartInvalid
	}
	if calendarDaysBetween(start, DateAtLocation(now, service.location)) > MaxCycleStartAgeDays {
		return models.CycleRecord{}, ErrCycleStartTooOld
	}

	if averageLength == 0 {
		averageLength = models.DefaultCycleLength
	}
	if averageLength < 1 || averageLength > models.MaxCycleLength {
		return models.CycleRecord{}, ErrCycleLengthInvalid
	}

	record := models.CycleRecord{
		UserID:            userID,
		StartDate:         FormatDay(start),
		AverageLengthDays: averageLength,
	}
	if err := service.records.Create(&record); err != nil {
		return models.CycleRecord{}, fmt.Errorf("save cycle record: %w", err)
	}
	return record, nil
}

// Estimate runs the estimator against the user's latest record as of now in
// the service location. Storage failures are returned; missing data is not.
func (service *CycleService) Estimate(userID uint, now time.Time) (CycleEstimate, error) {
	record, found, err := service.records.LatestForUser(userID)
	if err != nil {
		return CycleEstimate{}, fmt.Errorf("load cycle record: %w", err)
	}

	var latest *models.CycleRecord
	if found {
		latest = &record
	}

	estimate := EstimateCycle(latest, now.In(service.location))
	if !estimate.Predicted() {
		service.logger.Debug("cycle estimate fell back",
			zap.Uint("user_id", userID),
			zap.String("status", string(estimate.Status)),
			zap.Int("days_remaining", estimate.DaysRemaining()),
		)
	}
	return estimate, nil
}
