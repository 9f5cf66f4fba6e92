package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JinJinHistory/climb-hub/models"
	"github.com/JinJinHistory/climb-hub/utils"

	"gorm.io/gorm"
)

// CrawlLogService records ingestion-run outcomes. Logs are immutable
// after creation except for the status/completion fields.
type CrawlLogService struct {
	db *gorm.DB
}

// NewCrawlLogService creates a crawl-log service using the given
// connection.
func NewCrawlLogService(db *gorm.DB) *CrawlLogService {
	return &CrawlLogService{db: db}
}

// CreateCrawlLogInput carries the fields for a new crawl log.
// Timestamps are RFC3339 strings.
type CreateCrawlLogInput struct {
	GymID        string
	Status       string
	PostsFound   int
	PostsNew     int
	ErrorMessage *string
	StartedAt    string
	CompletedAt  *string
}

// UpdateCrawlLogInput carries a partial crawl-log change. Only the
// status/completion fields are updatable; the rest of the record is
// immutable after creation.
type UpdateCrawlLogInput struct {
	Status       *string
	PostsFound   *int
	PostsNew     *int
	ErrorMessage *string
	CompletedAt  *string
}

// List returns crawl logs joined with gym and brand, newest first,
// optionally filtered by gym.
func (s *CrawlLogService) List(ctx context.Context, gymID *string) ([]models.CrawlLog, error) {
	q := s.db.WithContext(ctx).
		Preload("Gym").
		Preload("Gym.Brand").
		Order("created_at DESC")
	if gymID != nil && *gymID != "" {
		q = q.Where("gym_id = ?", *gymID)
	}
	var logs []models.CrawlLog
	if err := q.Find(&logs).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return logs, nil
}

// Get returns one crawl log joined with gym and brand, or nil when the
// id doesn't exist.
func (s *CrawlLogService) Get(ctx context.Context, id string) (*models.CrawlLog, error) {
	var log models.CrawlLog
	err := s.db.WithContext(ctx).
		Preload("Gym").
		Preload("Gym.Brand").
		First(&log, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &log, nil
}

// Create inserts a crawl log for an existing gym.
func (s *CrawlLogService) Create(ctx context.Context, input CreateCrawlLogInput) (*models.CrawlLog, error) {
	if input.GymID == "" {
		return nil, &utils.ValidationError{Field: "gymId", Reason: "must not be empty"}
	}
	if !models.ValidCrawlStatus(input.Status) {
		return nil, &utils.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown crawl status %q", input.Status)}
	}
	if input.PostsFound < 0 || input.PostsNew < 0 {
		return nil, &utils.ValidationError{Field: "postsFound", Reason: "counts must not be negative"}
	}

	startedAt, err := parseTimestamp("startedAt", input.StartedAt)
	if err != nil {
		return nil, err
	}
	var completedAt *time.Time
	if input.CompletedAt != nil {
		t, err := parseTimestamp("completedAt", *input.CompletedAt)
		if err != nil {
			return nil, err
		}
		completedAt = &t
	}

	if err := s.checkGymExists(ctx, input.GymID); err != nil {
		return nil, err
	}

	log := models.CrawlLog{
		GymID:        input.GymID,
		Status:       input.Status,
		PostsFound:   input.PostsFound,
		PostsNew:     input.PostsNew,
		ErrorMessage: input.ErrorMessage,
		StartedAt:    startedAt,
		CompletedAt:  completedAt,
	}
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return s.reload(ctx, log.ID)
}

// Update applies only the supplied status/completion fields to an
// existing crawl log.
func (s *CrawlLogService) Update(ctx context.Context, id string, input UpdateCrawlLogInput) (*models.CrawlLog, error) {
	var log models.CrawlLog
	err := s.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &utils.NotFoundError{Entity: "crawl log", ID: id}
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}

	updates := map[string]interface{}{}

	if input.Status != nil {
		if !models.ValidCrawlStatus(*input.Status) {
			return nil, &utils.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown crawl status %q", *input.Status)}
		}
		updates["status"] = *input.Status
	}
	if input.PostsFound != nil {
		updates["posts_found"] = *input.PostsFound
	}
	if input.PostsNew != nil {
		updates["posts_new"] = *input.PostsNew
	}
	if input.ErrorMessage != nil {
		updates["error_message"] = *input.ErrorMessage
	}
	if input.CompletedAt != nil {
		t, err := parseTimestamp("completedAt", *input.CompletedAt)
		if err != nil {
			return nil, err
		}
		updates["completed_at"] = t
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&log).Updates(updates).Error; err != nil {
			return nil, utils.TranslateDBError(err)
		}
	}

	return s.reload(ctx, id)
}

func (s *CrawlLogService) reload(ctx context.Context, id string) (*models.CrawlLog, error) {
	var log models.CrawlLog
	err := s.db.WithContext(ctx).
		Preload("Gym").
		Preload("Gym.Brand").
		First(&log, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &log, nil
}

func (s *CrawlLogService) checkGymExists(ctx context.Context, gymID string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Gym{}).Where("id = ?", gymID).Count(&count).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	if count == 0 {
		return &utils.ReferentialError{
			Relation: "gyms",
			Detail:   fmt.Sprintf("unknown gym id: %s", gymID),
		}
	}
	return nil
}

func parseTimestamp(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, &utils.ValidationError{Field: field, Reason: "expected an RFC3339 timestamp"}
	}
	return t, nil
}
