package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
)

type stubActivityRepo struct {
	byDay     map[string]models.ActivityMetric
	lastRange DayRange
}

func newStubActivityRepo() *stubActivityRepo {
	return &stubActivityRepo{byDay: make(map[string]models.ActivityMetric)}
}

func (repo *stubActivityRepo) Upsert(metric *models.ActivityMetric) error {
	repo.byDay[metric.Day] = *metric
	return nil
}

func (repo *stubActivityRepo) ListRange(userID uint, fromDay string, toDay string) ([]models.ActivityMetric, error) {
	repo.lastRange = DayRange{From: fromDay, To: toDay}
	metrics := make([]models.ActivityMetric, 0)
	for day := mustParseDayNoT(fromDay); FormatDay(day) <= toDay; day = day.AddDate(0, 0, 1) {
		if metric, ok := repo.byDay[FormatDay(day)]; ok {
			metrics = append(metrics, metric)
		}
	}
	return metrics, nil
}

func mustParseDayNoT(raw string) time.Time {
	parsed, err := time.Parse(models.DayLayout, raw)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestSummarizeActivity(t *testing.T) {
	t.Parallel()

	metrics := []models.ActivityMetric{
		{Day: "2024-05-01", Steps: 8000, Calories: 2100.25, HeartRate: 70, SleepMinutes: 420},
		{Day: "2024-05-02", Steps: 4000, Calories: 1900.5, HeartRate: 0, SleepMinutes: 0},
		{Day: "2024-05-03", Steps: 6001, Calories: 2000, HeartRate: 75, SleepMinutes: 480},
	}
	summary := SummarizeActivity(DayRange{From: "2024-05-01", To: "2024-05-07"}, metrics)

	if summary.Days != 3 || summary.TotalSteps != 18001 {
		t.Fatalf("unexpected totals %#v", summary)
	}
	if summary.TotalCalories != 6000.8 {
		t.Fatalf("expected total calories 6000.8, got %v", summary.TotalCalories)
	}
	if summary.AverageSteps != 6000.3 {
		t.Fatalf("expected average steps 6000.3, got %v", summary.AverageSteps)
	}
	if summary.AverageHeartRate != 72.5 {
		t.Fatalf("expected average heart rate over days with readings, got %v", summary.AverageHeartRate)
	}
	if summary.AverageSleepMinutes != 450 {
		t.Fatalf("expected average sleep over days with sleep, got %v", summary.AverageSleepMinutes)
	}
}

func TestSummarizeActivityEmpty(t *testing.T) {
	t.Parallel()

	summary := SummarizeActivity(DayRange{From: "2024-05-01", To: "2024-05-01"}, nil)
	if summary.Days != 0 || summary.AverageSteps != 0 || summary.AverageHeartRate != 0 {
		t.Fatalf("expected zero summary, got %#v", summary)
	}
}

func TestActivityServiceRecordValidates(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.May, 3, 12, 0, 0, 0, time.UTC)
	service := NewActivityService(newStubActivityRepo(), time.UTC)

	cases := []struct {
		name    string
		day     string
		input   ActivityInput
		wantErr error
	}{
		{name: "negative steps", day: "2024-05-01", input: ActivityInput{Steps: -1}, wantErr: ErrActivityInvalid},
		{name: "heart rate too low", day: "2024-05-01", input: ActivityInput{HeartRate: 5}, wantErr: ErrActivityInvalid},
		{name: "sleep over a day", day: "2024-05-01", input: ActivityInput{SleepMinutes: 1441}, wantErr: ErrActivityInvalid},
		{name: "future day", day: "2024-05-04", input: ActivityInput{Steps: 10}, wantErr: ErrDayInFuture},
		{name: "bad day", day: "yesterday", input: ActivityInput{Steps: 10}, wantErr: ErrDayInvalid},
	}
	for _, testCase := range cases {
		if _, err := service.Record(1, testCase.day, testCase.input, now); !errors.Is(err, testCase.wantErr) {
			t.Fatalf("%s: expected %v, got %v", testCase.name, testCase.wantErr, err)
		}
	}
}

func TestActivityServiceSummaryDefaultsToLastWeek(t *testing.T) {
	t.Parallel()

	repo := newStubActivityRepo()
	service := NewActivityService(repo, time.UTC)
	now := time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC)

	for _, day := range []string{"2024-05-03", "2024-05-04", "2024-05-10"} {
		if _, err := service.Record(1, day, ActivityInput{Steps: 1000}, now); err != nil {
			t.Fatalf("record %s: %v", day, err)
		}
	}

	summary, metrics, err := service.Summary(1, "", "", now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if repo.lastRange.From != "2024-05-04" || repo.lastRange.To != "2024-05-10" {
		t.Fatalf("unexpected default range %#v", repo.lastRange)
	}
	if len(metrics) != 2 || summary.TotalSteps != 2000 {
		t.Fatalf("expected two days in window, got %d days / %d steps", len(metrics), summary.TotalSteps)
	}
}

func TestActivityServiceTodayWithoutData(t *testing.T) {
	t.Parallel()

	service := NewActivityService(newStubActivityRepo(), time.UTC)
	today, err := service.Today(3, time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today.Day != "2024-05-10" || today.Steps != 0 {
		t.Fatalf("expected empty metric for today, got %#v", today)
	}
}
