package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
	"github.com/terraincognita07/vitalis/internal/services"
)

// RunEstimateCommand prints the cycle estimate for a single start date.
// An empty rawOn uses today in location.
func RunEstimateCommand(out io.Writer, rawStart string, averageLength int, rawOn string, now time.Time, location *time.Location) error {
	reference := services.DateAtLocation(now, location)
	if rawOn != "" {
		parsed, err := services.ParseDay(rawOn, location)
		if err != nil {
			return fmt.Errorf("invalid --on date %q: %w", rawOn, err)
		}
		reference = parsed
	}

	var record *models.CycleRecord
	if rawStart != "" {
		record = &models.CycleRecord{StartDate: rawStart, AverageLengthDays: averageLength}
	}

	estimate := services.EstimateCycle(record, reference)
	fmt.Fprintf(out, "status: %s\n", estimate.Status)
	fmt.Fprintf(out, "days remaining: %d\n", estimate.DaysRemaining())
	if next, ok := estimate.PredictedStartDate(); ok {
		fmt.Fprintf(out, "cycle length: %d\n", estimate.CycleLength)
		fmt.Fprintf(out, "next start: %s\n", services.FormatDay(next))
	}
	return nil
}
