package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JinJinHistory/climb-hub/models"
	"github.com/JinJinHistory/climb-hub/types"
	"github.com/JinJinHistory/climb-hub/utils"

	"gorm.io/gorm"
)

// Publisher receives realtime events after successful writes. A nil
// publisher disables events.
type Publisher interface {
	Publish(event string, data interface{})
}

// Realtime event names emitted by the route-update service.
const (
	EventRouteUpdateCreated = "routeUpdate.created"
	EventRouteUpdateUpdated = "routeUpdate.updated"
	EventRouteUpdateDeleted = "routeUpdate.deleted"
)

// RouteUpdateService implements route-update CRUD. Reads come back
// joined with gym and brand in one logical fetch.
type RouteUpdateService struct {
	db     *gorm.DB
	events Publisher
}

// NewRouteUpdateService creates a route-update service. events may be
// nil when no realtime feed is attached.
func NewRouteUpdateService(db *gorm.DB, events Publisher) *RouteUpdateService {
	return &RouteUpdateService{db: db, events: events}
}

// ListRouteUpdatesInput filters and paginates the route-update listing.
type ListRouteUpdatesInput struct {
	GymID  *string
	Type   *string
	Limit  int
	Offset int
}

// CreateRouteUpdateInput carries the fields for a new route update.
// IsVerified defaults to false; admin-entered records set it true
// explicitly at creation.
type CreateRouteUpdateInput struct {
	GymID            string
	Type             string
	UpdateDate       string
	Title            *string
	Description      *string
	InstagramPostURL *string
	InstagramPostID  *string
	ImageURLs        []string
	RawCaption       *string
	ParsedData       map[string]interface{}
	IsVerified       *bool
}

// UpdateRouteUpdateInput carries a partial route-update change; nil
// fields are left untouched.
type UpdateRouteUpdateInput struct {
	GymID            *string
	Type             *string
	UpdateDate       *string
	Title            *string
	Description      *string
	InstagramPostURL *string
	InstagramPostID  *string
	ImageURLs        *[]string
	RawCaption       *string
	ParsedData       *map[string]interface{}
	IsVerified       *bool
}

const defaultListLimit = 10

// List returns route updates ordered by update date descending,
// optionally filtered by gym and/or type, paginated by limit/offset.
func (s *RouteUpdateService) List(ctx context.Context, input ListRouteUpdatesInput) ([]models.RouteUpdate, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	q := s.db.WithContext(ctx).
		Preload("Gym").
		Preload("Gym.Brand").
		// created_at breaks ties so pagination is stable within a date.
		Order("update_date DESC, created_at DESC").
		Limit(limit).
		Offset(offset)
	if input.GymID != nil && *input.GymID != "" {
		q = q.Where("gym_id = ?", *input.GymID)
	}
	if input.Type != nil && *input.Type != "" {
		if !models.ValidUpdateType(*input.Type) {
			return nil, &utils.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown update type %q", *input.Type)}
		}
		q = q.Where("type = ?", *input.Type)
	}

	var updates []models.RouteUpdate
	if err := q.Find(&updates).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return updates, nil
}

// ListByGym returns all of a gym's route updates ordered by update date
// descending.
func (s *RouteUpdateService) ListByGym(ctx context.Context, gymID string) ([]models.RouteUpdate, error) {
	var updates []models.RouteUpdate
	err := s.db.WithContext(ctx).
		Preload("Gym").
		Preload("Gym.Brand").
		Where("gym_id = ?", gymID).
		Order("update_date DESC, created_at DESC").
		Find(&updates).Error
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return updates, nil
}

// Get returns one route update joined with gym and brand, or nil when
// the id doesn't exist.
func (s *RouteUpdateService) Get(ctx context.Context, id string) (*models.RouteUpdate, error) {
	var update models.RouteUpdate
	err := s.db.WithContext(ctx).
		Preload("Gym").
		Preload("Gym.Brand").
		First(&update, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &update, nil
}

// Create inserts a route update and emits a created event. The update
// date is a plain calendar date and round-trips without time-zone
// shifts.
func (s *RouteUpdateService) Create(ctx context.Context, input CreateRouteUpdateInput) (*models.RouteUpdate, error) {
	if input.GymID == "" {
		return nil, &utils.ValidationError{Field: "gymId", Reason: "must not be empty"}
	}
	if !models.ValidUpdateType(input.Type) {
		return nil, &utils.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown update type %q", input.Type)}
	}
	updateDate, err := types.ParseDateOnly(input.UpdateDate)
	if err != nil {
		return nil, &utils.ValidationError{Field: "updateDate", Reason: err.Error()}
	}
	if err := s.checkGymExists(ctx, input.GymID); err != nil {
		return nil, err
	}

	imageURLs := types.StringList(input.ImageURLs)
	if imageURLs == nil {
		imageURLs = types.StringList{}
	}
	isVerified := false
	if input.IsVerified != nil {
		isVerified = *input.IsVerified
	}

	update := models.RouteUpdate{
		GymID:            input.GymID,
		Type:             input.Type,
		UpdateDate:       updateDate,
		Title:            input.Title,
		Description:      input.Description,
		InstagramPostURL: input.InstagramPostURL,
		InstagramPostID:  input.InstagramPostID,
		ImageURLs:        imageURLs,
		RawCaption:       input.RawCaption,
		ParsedData:       types.JSONMap(input.ParsedData),
		IsVerified:       isVerified,
	}
	if err := s.db.WithContext(ctx).Create(&update).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}

	created, err := s.reload(ctx, update.ID)
	if err != nil {
		return nil, err
	}
	s.publish(EventRouteUpdateCreated, created)
	return created, nil
}

// Update applies only the supplied fields to an existing route update
// and emits an updated event.
func (s *RouteUpdateService) Update(ctx context.Context, id string, input UpdateRouteUpdateInput) (*models.RouteUpdate, error) {
	var update models.RouteUpdate
	err := s.db.WithContext(ctx).First(&update, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &utils.NotFoundError{Entity: "route update", ID: id}
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}

	updates := map[string]interface{}{}

	if input.GymID != nil {
		if err := s.checkGymExists(ctx, *input.GymID); err != nil {
			return nil, err
		}
		updates["gym_id"] = *input.GymID
	}
	if input.Type != nil {
		if !models.ValidUpdateType(*input.Type) {
			return nil, &utils.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown update type %q", *input.Type)}
		}
		updates["type"] = *input.Type
	}
	if input.UpdateDate != nil {
		updateDate, err := types.ParseDateOnly(*input.UpdateDate)
		if err != nil {
			return nil, &utils.ValidationError{Field: "updateDate", Reason: err.Error()}
		}
		updates["update_date"] = updateDate
	}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.InstagramPostURL != nil {
		updates["instagram_post_url"] = *input.InstagramPostURL
	}
	if input.InstagramPostID != nil {
		updates["instagram_post_id"] = *input.InstagramPostID
	}
	if input.ImageURLs != nil {
		updates["image_urls"] = types.StringList(*input.ImageURLs)
	}
	if input.RawCaption != nil {
		updates["raw_caption"] = *input.RawCaption
	}
	if input.ParsedData != nil {
		updates["parsed_data"] = types.JSONMap(*input.ParsedData)
	}
	if input.IsVerified != nil {
		updates["is_verified"] = *input.IsVerified
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&update).Updates(updates).Error; err != nil {
			return nil, utils.TranslateDBError(err)
		}
	}

	updated, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(EventRouteUpdateUpdated, updated)
	return updated, nil
}

// Delete removes a route update and emits a deleted event.
func (s *RouteUpdateService) Delete(ctx context.Context, id string) error {
	var update models.RouteUpdate
	err := s.db.WithContext(ctx).First(&update, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &utils.NotFoundError{Entity: "route update", ID: id}
	}
	if err != nil {
		return utils.TranslateDBError(err)
	}

	if err := s.db.WithContext(ctx).Delete(&update).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	s.publish(EventRouteUpdateDeleted, map[string]interface{}{"id": id})
	return nil
}

func (s *RouteUpdateService) reload(ctx context.Context, id string) (*models.RouteUpdate, error) {
	var update models.RouteUpdate
	err := s.db.WithContext(ctx).
		Preload("Gym").
		Preload("Gym.Brand").
		First(&update, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &update, nil
}

func (s *RouteUpdateService) publish(event string, data interface{}) {
	if s.events != nil {
		s.events.Publish(event, data)
	}
}

func (s *RouteUpdateService) checkGymExists(ctx context.Context, gymID string) error {
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
