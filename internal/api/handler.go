package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/vitalis/internal/db"
	"github.com/terraincognita07/vitalis/internal/logging"
	"github.com/terraincognita07/vitalis/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	authCookieName       = "vitalis_auth"
	contextUserKey       = "current_user"
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	loginAttemptLimit  = 8
	loginAttemptWindow = 15 * time.Minute
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       *zap.Logger
	now          func() time.Time
	loginLimiter *attemptLimiter

	repositories    *db.Repositories
	authService     *services.AuthService
	cycleService    *services.CycleService
	activityService *services.ActivityService
	bmiService      *services.BMIService
	blogService     *services.BlogService
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, cookieSecure bool, logger *zap.Logger) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		logger:       logging.OrNop(logger),
		now:          time.Now,
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.cycleService = services.NewCycleService(handler.repositories.Cycles, handler.location, handler.logger)
	handler.activityService = services.NewActivityService(handler.repositories.Activity, handler.location)
	handler.bmiService = services.NewBMIService(handler.repositories.BMI, handler.repositories.Users, handler.location)
	handler.blogService = services.NewBlogService(handler.repositories.Blog)
	return handler
}

// Repositories exposes the storage layer for background jobs sharing the
// handler's database.
func (handler *Handler) Repositories() *db.Repositories {
	return handler.repositories
}
