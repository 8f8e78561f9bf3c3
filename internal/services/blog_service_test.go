package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/vitalis/internal/models"
	"gorm.io/gorm"
)

type stubBlogRepo struct {
	posts     map[string]models.BlogPost
	lastLimit int
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{posts: make(map[string]models.BlogPost)}
}

func (repo *stubBlogRepo) Create(post *models.BlogPost) error {
	repo.posts[post.Slug] = *post
	return nil
}

func (repo *stubBlogRepo) ListPublished(now time.Time, limit int) ([]models.BlogPost, error) {
	repo.lastLimit = limit
	return []models.BlogPost{}, nil
}

func (repo *stubBlogRepo) FindBySlug(slug string) (models.BlogPost, error) {
	post, ok := repo.posts[slug]
	if !ok {
		return models.BlogPost{}, gorm.ErrRecordNotFound
	}
	return post, nil
}

func (repo *stubBlogRepo) SlugExists(slug string) (bool, error) {
	_, ok := repo.posts[slug]
	return ok, nil
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Sleep & Recovery: 5 Tips": "sleep-recovery-5-tips",
		"  Heart-Rate Zones  ":     "heart-rate-zones",
		"Ünïcode only ✨":           "n-code-only",
		"!!!":                      "",
	}
	for title, want := range cases {
		if got := Slugify(title); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", title, got, want)
		}
	}
}

func TestBlogServicePublishDeduplicatesSlug(t *testing.T) {
	t.Parallel()

	repo := newStubBlogRepo()
	service := NewBlogService(repo)
	publishedAt := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)

	first, err := service.Publish("Walking Daily", "", "Body", publishedAt)
	if err != nil {
		t.Fatalf("publish first: %v", err)
	}
	second, err := service.Publish("Walking daily", "", "Body", publishedAt)
	if err != nil {
		t.Fatalf("publish second: %v", err)
	}

	if first.Slug != "walking-daily" {
		t.Fatalf("expected base slug, got %q", first.Slug)
	}
	if second.Slug == first.Slug || !strings.HasPrefix(second.Slug, "walking-daily-") {
		t.Fatalf("expected suffixed slug, got %q", second.Slug)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %q and %q", first.ID, second.ID)
	}
}

func TestBlogServicePublishRequiresContent(t *testing.T) {
	t.Parallel()

	service := NewBlogService(newStubBlogRepo())
	if _, err := service.Publish("  ", "", "Body", time.Now()); !errors.Is(err, ErrBlogPostInvalid) {
		t.Fatalf("expected ErrBlogPostInvalid, got %v", err)
	}
}

func TestBlogServiceGetHidesScheduledPosts(t *testing.T) {
	t.Parallel()

	repo := newStubBlogRepo()
	service := NewBlogService(repo)
	now := time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC)

	if _, err := service.Publish("Later", "", "Body", now.Add(time.Hour)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if _, err := service.Get("later", now); !errors.Is(err, ErrBlogPostNotFound) {
		t.Fatalf("expected scheduled post to be hidden, got %v", err)
	}
	if _, err := service.Get("missing", now); !errors.Is(err, ErrBlogPostNotFound) {
		t.Fatalf("expected ErrBlogPostNotFound, got %v", err)
	}
	if post, err := service.Get("LATER", now.Add(2*time.Hour)); err != nil || post.Title != "Later" {
		t.Fatalf("expected published post, got %#v err=%v", post, err)
	}
}

func TestBlogServiceListClampsLimit(t *testing.T) {
	t.Parallel()

	repo := newStubBlogRepo()
	service := NewBlogService(repo)

	if _, err := service.List(time.Now(), 0); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastLimit != DefaultBlogPageSize {
		t.Fatalf("expected default limit, got %d", repo.lastLimit)
	}
	if _, err := service.List(time.Now(), 5000); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastLimit != MaxBlogPageSize {
		t.Fatalf("expected max limit, got %d", repo.lastLimit)
	}
}
