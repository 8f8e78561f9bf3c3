package db

import (
	"github.com/terraincognita07/vitalis/internal/models"
	"gorm.io/gorm"
)

type BMIRepository struct {
	database *gorm.DB
}

func NewBMIRepository(database *gorm.DB) *BMIRepository {
	return &BMIRepository{database: database}
}

func (repo *BMIRepository) Create(record *models.BMIRecord) error {
	return repo.database.Create(record).Error
}

func (repo *BMIRepository) ListRange(userID uint, fromDay string, toDay string) ([]models.BMIRecord, error) {
	records := make([]models.BMIRecord, 0)
	err := repo.database.
		Where("user_id = ? AND day >= ? AND day <= ?", userID, fromDay, toDay).
		Order("day ASC, id ASC").
		Find(&records).Error
	return records, err
}
