package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
)

var (
	ErrDayInvalid       = errors.New("invalid date")
	ErrDayInFuture      = errors.New("date is in the future")
	ErrRangeFromInvalid = errors.New("invalid from date")
	ErrRangeToInvalid   = errors.New("invalid to date")
	ErrRangeInvalid     = errors.New("invalid date range")
	ErrRangeTooLong     = errors.New("date range too long")
)

// DayRange is an inclusive span of calendar days in DayLayout form.
type DayRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func FormatDay(value time.Time) string {
	return value.Format(models.DayLayout)
}

func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(models.DayLayout, strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, ErrDayInvalid
	}
	return parsed, nil
}

// ParsePastDay parses raw and rejects days after the calendar day of now.
func ParsePastDay(raw string, now time.Time, location *time.Location) (time.Time, error) {
	day, err := ParseDay(raw, location)
	if err != nil {
		return time.Time{}, err
	}
	if day.After(DateAtLocation(now, location)) {
		return time.Time{}, ErrDayInFuture
	}
	return day, nil
}

// ResolveDayRange parses an optional from/to pair. A missing end defaults to
// today, a missing start to defaultDays days ending at the end.
func ResolveDayRange(rawFrom string, rawTo string, now time.Time, location *time.Location, defaultDays int, maxDays int) (DayRange, error) {
	to := DateAtLocation(now, location)
	if strings.TrimSpace(rawTo) != "" {
		parsed, err := ParseDay(rawTo, location)
		if err != nil {
			return DayRange{}, ErrRangeToInvalid
		}
		to = parsed
	}

	from := to.AddDate(0, 0, -(defaultDays - 1))
	if strings.TrimSpace(rawFrom) != "" {
		parsed, err := ParseDay(rawFrom, location)
		if err != nil {
			return DayRange{}, ErrRangeFromInvalid
		}
		from = parsed
	}

	if to.Before(from) {
		return DayRange{}, ErrRangeInvalid
	}
	if maxDays > 0 && calendarDaysBetween(from, to)+1 > maxDays {
		return DayRange{}, ErrRangeTooLong
	}
	return DayRange{From: FormatDay(from), To: FormatDay(to)}, nil
}
