package db

import (
	"github.com/terraincognita07/vitalis/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) Upsert(metric *models.ActivityMetric) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "calories", "heart_rate", "sleep_minutes", "updated_at"}),
	}).Create(metric).Error
}

// ListRange returns the user's days in [fromDay, toDay], both inclusive, oldest first.
func (repo *ActivityRepository) ListRange(userID uint, fromDay string, toDay string) ([]models.ActivityMetric, error) {
	metrics := make([]models.ActivityMetric, 0)
	err := repo.database.
		Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Order("day ASC").
		Find(&metrics).Error
	return metrics, err
}
