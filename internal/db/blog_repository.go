package db

import (
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
	"gorm.io/gorm"
)

type BlogRepository struct {
	database *gorm.DB
}

func NewBlogRepository(database *gorm.DB) *BlogRepository {
	return &BlogRepository{database: database}
}

func (repo *BlogRepository) Create(post *models.BlogPost) error {
	return repo.database.Create(post).Error
}

// ListPublished omits post bodies; callers fetch one post by slug to read it.
func (repo *BlogRepository) ListPublished(now time.Time, limit int) ([]models.BlogPost, error) {
	posts := make([]models.BlogPost, 0)
	err := repo.database.
		Select("id", "slug", "title", "summary", "published_at").
		Where("published_at <= ?", now).
		Order("published_at DESC, slug ASC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (repo *BlogRepository) FindBySlug(slug string) (models.BlogPost, error) {
	var post models.BlogPost
	if err := repo.database.Where("slug = ?", slug).First(&post).Error; err != nil {
		return models.BlogPost{}, err
	}
	return post, nil
}

func (repo *BlogRepository) SlugExists(slug string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}
