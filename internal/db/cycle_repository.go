package db

import (
	"errors"

	"github.com/terraincognita07/vitalis/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) Create(record *models.CycleRecord) error {
	return repo.database.Create(record).Error
}

// LatestForUser returns the record with the greatest start date, breaking ties
// by insertion order. The boolean is false when the user never logged a cycle.
func (repo *CycleRepository) LatestForUser(userID uint) (models.CycleRecord, bool, error) {
	var record models.CycleRecord
	err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CycleRecord{}, false, nil
	}
	if err != nil {
		return models.CycleRecord{}, false, err
	}
	return record, true, nil
}

// LatestPerUser returns the newest record of every user that has one.
func (repo *CycleRepository) LatestPerUser() ([]models.CycleRecord, error) {
	records := make([]models.CycleRecord, 0)
	err := repo.database.Raw(`
SELECT c.* FROM cycle_records c
WHERE c.id = (
  SELECT c2.id FROM cycle_records c2
  WHERE c2.user_id = c.user_id
  ORDER BY c2.start_date DESC, c2.id DESC
  LIMIT 1
)
ORDER BY c.user_id ASC`).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
