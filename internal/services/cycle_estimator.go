package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
)

// FallbackDaysRemaining is reported whenever no prediction can be made. It is a
// placeholder for display, not a measured estimate.
const FallbackDaysRemaining = 15

type CycleEstimateStatus string

const (
	CycleEstimatePredicted    CycleEstimateStatus = "predicted"
	CycleEstimateNoData       CycleEstimateStatus = "no_data"
	CycleEstimateInvalidInput CycleEstimateStatus = "invalid_input"
)

// CycleEstimate is the full outcome of a prediction. Only DaysRemaining and
// PredictedStartDate collapse the non-predicted states into the fallback.
type CycleEstimate struct {
	Status      CycleEstimateStatus
	CycleLength int
	ElapsedDays int
	remaining   int
	nextStart   time.Time
}

func (estimate CycleEstimate) Predicted() bool {
	return estimate.Status == CycleEstimatePredicted
}

func (estimate CycleEstimate) DaysRemaining() int {
	if !estimate.Predicted() {
		return FallbackDaysRemaining
	}
	return estimate.remaining
}

func (estimate CycleEstimate) PredictedStartDate() (time.Time, bool) {
	if !estimate.Predicted() {
		return time.Time{}, false
	}
	return estimate.nextStart, true
}

// EstimateDaysRemaining reports whole days until the next predicted cycle start.
func EstimateDaysRemaining(record *models.CycleRecord, reference time.Time) int {
	return EstimateCycle(record, reference).DaysRemaining()
}

// EstimateCycle predicts the next cycle start as seen on the calendar day of
// reference. A reference day before the recorded start counts as zero elapsed
// days, so a full cycle remains.
func EstimateCycle(record *models.CycleRecord, reference time.Time) CycleEstimate {
	if record == nil || strings.TrimSpace(record.StartDate) == "" {
		return CycleEstimate{Status: CycleEstimateNoData}
	}

	start, ok := ParseCycleStartDate(record.StartDate)
	if !ok {
		return CycleEstimate{Status: CycleEstimateInvalidInput}
	}

	cycleLength := EffectiveCycleLength(record.AverageLengthDays)
	today := DateAtLocation(reference, reference.Location())
	elapsed := max(calendarDaysBetween(start, today), 0)

	remaining := max(cycleLength-floorMod(elapsed, cycleLength), 0)

	return CycleEstimate{
		Status:      CycleEstimatePredicted,
		CycleLength: cycleLength,
		ElapsedDays: elapsed,
		remaining:   remaining,
		nextStart:   today.AddDate(0, 0, remaining),
	}
}

func EffectiveCycleLength(averageLengthDays int) int {
	if averageLengthDays <= 0 {
		return models.DefaultCycleLength
	}
	return averageLengthDays
}

// ParseCycleStartDate accepts a plain calendar day or an RFC 3339 timestamp,
// whose own calendar day is kept.
func ParseCycleStartDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(models.DayLayout, value); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		year, month, day := parsed.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

const secondsPerDay = 24 * 60 * 60

// calendarDaysBetween counts days between the calendar dates of from and to,
// ignoring their locations and any DST shifts.
func calendarDaysBetween(from time.Time, to time.Time) int {
	fromYear, fromMonth, fromDay := from.Date()
	toYear, toMonth, toDay := to.Date()
	fromUTC := time.Date(fromYear, fromMonth, fromDay, 0, 0, 0, 0, time.UTC)
	toUTC := time.Date(toYear, toMonth, toDay, 0, 0, 0, 0, time.UTC)
	return int((toUTC.Unix() - fromUTC.Unix()) / secondsPerDay)
}

func floorMod(value int, modulus int) int {
	result := value % modulus
	if result < 0 {
		result += modulus
	}
	return result
}
