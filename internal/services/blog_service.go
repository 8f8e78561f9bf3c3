package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/terraincognita07/vitalis/internal/models"
	"github.com/terraincognita07/vitalis/internal/security"
	"gorm.io/gorm"
)

const (
	DefaultBlogPageSize = 20
	MaxBlogPageSize     = 100
)

var (
	ErrBlogPostNotFound = errors.New("post not found")
	ErrBlogPostInvalid  = errors.New("post title and body are required")
)

type BlogRepository interface {
	Create(post *models.BlogPost) error
	ListPublished(now time.Time, limit int) ([]models.BlogPost, error)
	FindBySlug(slug string) (models.BlogPost, error)
	SlugExists(slug string) (bool, error)
}

type BlogService struct {
	posts BlogRepository
}

func NewBlogService(posts BlogRepository) *BlogService {
	return &BlogService{posts: posts}
}

func (service *BlogService) List(now time.Time, limit int) ([]models.BlogPost, error) {
	if limit <= 0 {
		limit = DefaultBlogPageSize
	}
	limit = min(limit, MaxBlogPageSize)
	return service.posts.ListPublished(now.UTC(), limit)
}

// Get returns a post by slug; unpublished posts are reported as missing.
func (service *BlogService) Get(slug string, now time.Time) (models.BlogPost, error) {
	post, err := service.posts.FindBySlug(strings.ToLower(strings.TrimSpace(slug)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BlogPost{}, ErrBlogPostNotFound
	}
	if err != nil {
		return models.BlogPost{}, fmt.Errorf("load post: %w", err)
	}
	if post.PublishedAt.After(now) {
		return models.BlogPost{}, ErrBlogPostNotFound
	}
	return post, nil
}

func (service *BlogService) Publish(title string, summary string, body string, publishedAt time.Time) (models.BlogPost, error) {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return models.BlogPost{}, ErrBlogPostInvalid
	}

	slug, err := service.uniqueSlug(Slugify(title))
	if err != nil {
		return models.BlogPost{}, err
	}

	post := models.BlogPost{
		ID:          uuid.NewString(),
		Slug:        slug,
		Title:       title,
		Summary:     strings.TrimSpace(summary),
		Body:        body,
		PublishedAt: publishedAt.UTC(),
	}
	if err := service.posts.Create(&post); err != nil {
		return models.BlogPost{}, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

func (service *BlogService) uniqueSlug(base string) (string, error) {
	if base == "" {
		base = "post"
	}
	candidate := base
	for attempt := 0; attempt < 5; attempt++ {
		exists, err := service.posts.SlugExists(candidate)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		suffix, err := security.RandomString(6, security.SlugAlphabet)
		if err != nil {
			return "", fmt.Errorf("slug suffix: %w", err)
		}
		candidate = base + "-" + suffix
	}
	return "", fmt.Errorf("no free slug for %q", base)
}

// Slugify lowercases title and joins its letter and digit runs with dashes.
func Slugify(title string) string {
	var builder strings.Builder
	pendingDash := false
	for _, char := range strings.ToLower(title) {
		if char < unicode.MaxASCII && (unicode.IsLetter(char) || unicode.IsDigit(char)) {
			if pendingDash && builder.Len() > 0 {
				builder.WriteByte('-')
			}
			builder.WriteRune(char)
			pendingDash = false
			continue
		}
		pendingDash = true
	}
	slug := builder.String()
	if len(slug) > 80 {
		slug = strings.TrimRight(slug[:80], "-")
	}
	return slug
}
