package services

import (
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
)

func TestCalculateBMI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		heightCm     float64
		weightKg     float64
		wantBMI      float64
		wantCategory string
	}{
		{heightCm: 180, weightKg: 81, wantBMI: 25, wantCategory: "overweight"},
		{heightCm: 165, weightKg: 50, wantBMI: 18.4, wantCategory: "underweight"},
		{heightCm: 170, weightKg: 65, wantBMI: 22.5, wantCategory: "normal"},
		{heightCm: 160, weightKg: 110, wantBMI: 43, wantCategory: "obesity_3"},
	}
	for _, testCase := range cases {
		got, err := CalculateBMI(testCase.heightCm, testCase.weightKg)
		if err != nil {
			t.Fatalf("%v/%v: unexpected error %v", testCase.heightCm, testCase.weightKg, err)
		}
		if got != testCase.wantBMI {
			t.Fatalf("%v/%v: expected %v, got %v", testCase.heightCm, testCase.weightKg, testCase.wantBMI, got)
		}
		if category := BMICategory(got); category != testCase.wantCategory {
			t.Fatalf("%v: expected category %q, got %q", got, testCase.wantCategory, category)
		}
	}
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	t.Parallel()

	for _, input := range [][2]float64{{0, 70}, {170, 0}, {40, 70}, {170, 500}, {-170, 70}} {
		if _, err := CalculateBMI(input[0], input[1]); !errors.Is(err, ErrBMIMeasurementInvalid) {
			t.Fatalf("%v: expected ErrBMIMeasurementInvalid, got %v", input, err)
		}
	}
}

type stubBMIRepo struct {
	records []models.BMIRecord
}

func (repo *stubBMIRepo) Create(record *models.BMIRecord) error {
	repo.records = append(repo.records, *record)
	return nil
}

func (repo *stubBMIRepo) ListRange(userID uint, fromDay string, toDay string) ([]models.BMIRecord, error) {
	matched := make([]models.BMIRecord, 0)
	for _, record := range repo.records {
		if record.UserID == userID && record.Day >= fromDay && record.Day <= toDay {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

type stubHeightRepo struct {
	heights map[uint]float64
}

func (repo *stubHeightRepo) UpdateHeight(userID uint, heightCm float64) error {
	repo.heights[userID] = heightCm
	return nil
}

func TestBMIServiceRecordReusesStoredHeight(t *testing.T) {
	t.Parallel()

	records := &stubBMIRepo{}
	heights := &stubHeightRepo{heights: map[uint]float64{}}
	service := NewBMIService(records, heights, time.UTC)
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	user := models.User{ID: 4, HeightCm: 170}

	record, err := service.Record(user, "2024-03-05", 0, 65, now)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if record.HeightCm != 170 || record.BMI != 22.5 || record.Category != "normal" {
		t.Fatalf("unexpected record %#v", record)
	}
	if _, updated := heights.heights[4]; updated {
		t.Fatal("expected unchanged height not to be written")
	}

	if _, err := service.Record(user, "2024-03-05", 172, 65, now); err != nil {
		t.Fatalf("record with new height: %v", err)
	}
	if heights.heights[4] != 172 {
		t.Fatalf("expected height to be remembered, got %v", heights.heights[4])
	}
}

func TestBMIServiceRecordRequiresHeight(t *testing.T) {
	t.Parallel()

	service := NewBMIService(&stubBMIRepo{}, &stubHeightRepo{heights: map[uint]float64{}}, time.UTC)
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)
	if _, err := service.Record(models.User{ID: 1}, "2024-03-05", 0, 70, now); !errors.Is(err, ErrBMIMeasurementInvalid) {
		t.Fatalf("expected ErrBMIMeasurementInvalid, got %v", err)
	}
}

func TestBMIServiceHistoryFiltersRange(t *testing.T) {
	t.Parallel()

	records := &stubBMIRepo{records: []models.BMIRecord{
		{UserID: 1, Day: "2023-01-01", BMI: 24},
		{UserID: 1, Day: "2024-02-01", BMI: 23},
		{UserID: 2, Day: "2024-02-01", BMI: 30},
	}}
	service := NewBMIService(records, &stubHeightRepo{heights: map[uint]float64{}}, time.UTC)
	now := time.Date(2024, time.March, 5, 8, 0, 0, 0, time.UTC)

	dayRange, history, err := service.History(1, "", "", now)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if dayRange.To != "2024-03-05" || dayRange.From != "2023-03-07" {
		t.Fatalf("unexpected default range %#v", dayRange)
	}
	if len(history) != 1 || history[0].BMI != 23 {
		t.Fatalf("unexpected history %#v", history)
	}
}
