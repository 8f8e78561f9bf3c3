package services

import (
	"errors"
	"testing"
	"time"
)

func TestResolveDayRange(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.May, 20, 15, 0, 0, 0, time.UTC)

	t.Run("defaults to trailing window", func(t *testing.T) {
		got, err := ResolveDayRange("", "", now, time.UTC, 7, 0)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got.From != "2024-05-14" || got.To != "2024-05-20" {
			t.Fatalf("unexpected range %#v", got)
		}
	})

	t.Run("explicit bounds", func(t *testing.T) {
		got, err := ResolveDayRange("2024-05-01", "2024-05-03", now, time.UTC, 7, 31)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if got.From != "2024-05-01" || got.To != "2024-05-03" {
			t.Fatalf("unexpected range %#v", got)
		}
	})

	t.Run("invalid from", func(t *testing.T) {
		if _, err := ResolveDayRange("nope", "", now, time.UTC, 7, 0); !errors.Is(err, ErrRangeFromInvalid) {
			t.Fatalf("expected ErrRangeFromInvalid, got %v", err)
		}
	})

	t.Run("invalid to", func(t *testing.T) {
		if _, err := ResolveDayRange("", "2024-13-01", now, time.UTC, 7, 0); !errors.Is(err, ErrRangeToInvalid) {
			t.Fatalf("expected ErrRangeToInvalid, got %v", err)
		}
	})

	t.Run("reversed", func(t *testing.T) {
		if _, err := ResolveDayRange("2024-05-10", "2024-05-01", now, time.UTC, 7, 0); !errors.Is(err, ErrRangeInvalid) {
			t.Fatalf("expected ErrRangeInvalid, got %v", err)
		}
	})

	t.Run("too long", func(t *testing.T) {
		if _, err := ResolveDayRange("2024-01-01", "2024-05-01", now, time.UTC, 7, 31); !errors.Is(err, ErrRangeTooLong) {
			t.Fatalf("expected ErrRangeTooLong, got %v", err)
		}
	})
}

func TestParsePastDayRejectsFuture(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.May, 20, 23, 59, 0, 0, time.UTC)
	if _, err := ParsePastDay("2024-05-20", now, time.UTC); err != nil {
		t.Fatalf("expected today to be accepted, got %v", err)
	}
	if _, err := ParsePastDay("2024-05-21", now, time.UTC); !errors.Is(err, ErrDayInFuture) {
		t.Fatalf("expected ErrDayInFuture, got %v", err)
	}
	if _, err := ParsePastDay("20/05/2024", now, time.UTC); !errors.Is(err, ErrDayInvalid) {
		t.Fatalf("expected ErrDayInvalid, got %v", err)
	}
}
