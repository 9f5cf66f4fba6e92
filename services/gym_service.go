package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JinJinHistory/climb-hub/models"
	"github.com/JinJinHistory/climb-hub/utils"

	"gorm.io/gorm"
)

// GymService implements gym CRUD. Reads always come back joined with
// the owning brand in one logical fetch.
type GymService struct {
	db *gorm.DB
}

// NewGymService creates a gym service using the given connection.
func NewGymService(db *gorm.DB) *GymService {
	return &GymService{db: db}
}

// CreateGymInput carries the fields for a new gym. IsActive defaults to
// true when nil.
type CreateGymInput struct {
	BrandID         string
	Name            string
	BranchName      string
	InstagramURL    string
	InstagramHandle string
	Address         *string
	Phone           *string
	Latitude        *float64
	Longitude       *float64
	IsActive        *bool
}

// UpdateGymInput carries a partial gym update; nil fields are left
// untouched.
type UpdateGymInput struct {
	BrandID         *string
	Name            *string
	BranchName      *string
	InstagramURL    *string
	InstagramHandle *string
	Address         *string
	Phone           *string
	Latitude        *float64
	Longitude       *float64
	IsActive        *bool
}

// List returns gyms joined with their brand, ordered by name.
// activeOnly narrows the result to is_active gyms.
func (s *GymService) List(ctx context.Context, activeOnly bool) ([]models.Gym, error) {
	q := s.db.WithContext(ctx).Preload("Brand").Order("name")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var gyms []models.Gym
	if err := q.Find(&gyms).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return gyms, nil
}

// ListByBrand returns a brand's gyms ordered by name.
func (s *GymService) ListByBrand(ctx context.Context, brandID string) ([]models.Gym, error) {
	var gyms []models.Gym
	err := s.db.WithContext(ctx).
		Preload("Brand").
		Where("brand_id = ?", brandID).
		Order("name").
		Find(&gyms).Error
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return gyms, nil
}

// Get returns one gym joined with its brand, or nil when the id doesn't
// exist.
func (s *GymService) Get(ctx context.Context, id string) (*models.Gym, error) {
	var gym models.Gym
	err := s.db.WithContext(ctx).Preload("Brand").First(&gym, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &gym, nil
}

// Create inserts a gym after checking the brand exists and the
// uniqueness rules hold: instagram handle globally, branch name within
// the brand.
func (s *GymService) Create(ctx context.Context, input CreateGymInput) (*models.Gym, error) {
	for field, value := range map[string]string{
		"brandId":         input.BrandID,
		"name":            input.Name,
		"branchName":      input.BranchName,
		"instagramUrl":    input.InstagramURL,
		"instagramHandle": input.InstagramHandle,
	} {
		if value == "" {
			return nil, &utils.ValidationError{Field: field, Reason: "must not be empty"}
		}
	}

	if err := s.checkBrandExists(ctx, input.BrandID); err != nil {
		return nil, err
	}
	if err := s.checkHandleConflict(ctx, input.InstagramHandle, ""); err != nil {
		return nil, err
	}
	if err := s.checkBranchConflict(ctx, input.BrandID, input.BranchName, ""); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	gym := models.Gym{
		BrandID:         input.BrandID,
		Name:            input.Name,
		BranchName:      input.BranchName,
		InstagramURL:    input.InstagramURL,
		InstagramHandle: input.InstagramHandle,
		Address:         input.Address,
		Phone:           input.Phone,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		IsActive:        isActive,
	}
	if err := s.db.WithContext(ctx).Create(&gym).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return s.reload(ctx, gym.ID)
}

// Update applies only the supplied fields to an existing gym, rechecking
// the uniqueness rules for any field that participates in them.
func (s *GymService) Update(ctx context.Context, id string, input UpdateGymInput) (*models.Gym, error) {
	var gym models.Gym
	err := s.db.WithContext(ctx).First(&gym, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &utils.NotFoundError{Entity: "gym", ID: id}
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}

	updates := map[string]interface{}{}

	if input.BrandID != nil {
		if err := s.checkBrandExists(ctx, *input.BrandID); err != nil {
			return nil, err
		}
		updates["brand_id"] = *input.BrandID
	}
	if input.InstagramHandle != nil {
		if err := s.checkHandleConflict(ctx, *input.InstagramHandle, id); err != nil {
			return nil, err
		}
		updates["instagram_handle"] = *input.InstagramHandle
	}
	if input.BrandID != nil || input.BranchName != nil {
		// The pair constraint is checked against the post-update values.
		brandID := gym.BrandID
		branchName := gym.BranchName
		if input.BrandID != nil {
			brandID = *input.BrandID
		}
		if input.BranchName != nil {
			branchName = *input.BranchName
		}
		if err := s.checkBranchConflict(ctx, brandID, branchName, id); err != nil {
			return nil, err
		}
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.BranchName != nil {
		updates["branch_name"] = *input.BranchName
	}
	if input.InstagramURL != nil {
		updates["instagram_url"] = *input.InstagramURL
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Latitude != nil {
		updates["latitude"] = *input.Latitude
	}
	if input.Longitude != nil {
		updates["longitude"] = *input.Longitude
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&gym).Updates(updates).Error; err != nil {
			return nil, utils.TranslateDBError(err)
		}
	}

	return s.reload(ctx, id)
}

// Delete removes a gym. Its route updates and crawl logs go with it via
// the cascade constraints.
func (s *GymService) Delete(ctx context.Context, id string) error {
	var gym models.Gym
	err := s.db.WithContext(ctx).First(&gym, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &utils.NotFoundError{Entity: "gym", ID: id}
	}
	if err != nil {
		return utils.TranslateDBError(err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gym_id = ?", id).Delete(&models.RouteUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("gym_id = ?", id).Delete(&models.CrawlLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&gym).Error
	})
	if err != nil {
		return utils.TranslateDBError(err)
	}
	return nil
}

func (s *GymService) reload(ctx context.Context, id string) (*models.Gym, error) {
	var gym models.Gym
	if err := s.db.WithContext(ctx).Preload("Brand").First(&gym, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &gym, nil
}

func (s *GymService) checkBrandExists(ctx context.Context, brandID string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Brand{}).Where("id = ?", brandID).Count(&count).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	if count == 0 {
		return &utils.ReferentialError{
			Relation: "brands",
			Detail:   fmt.Sprintf("unknown brand id: %s", brandID),
		}
	}
	return nil
}

func (s *GymService) checkHandleConflict(ctx context.Context, handle, excludeID string) error {
	q := s.db.WithContext(ctx).Model(&models.Gym{}).Where("instagram_handle = ?", handle)
	if excludeID != "" {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	if count > 0 {
		return &utils.ConflictError{Field: "instagramHandle", Value: handle}
	}
	return nil
}

func (s *GymService) checkBranchConflict(ctx context.Context, brandID, branchName, excludeID string) error {
	q := s.db.WithContext(ctx).Model(&models.Gym{}).
		Where("brand_id = ? AND branch_name = ?", brandID, branchName)
	if excludeID != "" {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	if count > 0 {
		return &utils.ConflictError{Field: "branchName", Value: branchName}
	}
	return nil
}
