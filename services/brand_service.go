package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/JinJinHistory/climb-hub/models"
	"github.com/JinJinHistory/climb-hub/utils"

	"gorm.io/gorm"
)

// BrandService implements brand CRUD against the relational store.
type BrandService struct {
	db *gorm.DB
}

// NewBrandService creates a brand service using the given connection.
func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

// CreateBrandInput carries the fields for a new brand.
type CreateBrandInput struct {
	Name       string
	LogoURL    *string
	WebsiteURL *string
}

// UpdateBrandInput carries a partial brand update; nil fields are left
// untouched.
type UpdateBrandInput struct {
	Name       *string
	LogoURL    *string
	WebsiteURL *string
}

// List returns all brands ordered by name.
func (s *BrandService) List(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := s.db.WithContext(ctx).Order("name").Find(&brands).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return brands, nil
}

// Get returns one brand, or nil when the id doesn't exist.
func (s *BrandService) Get(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	err := s.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &brand, nil
}

// Create inserts a brand. Duplicate names are rejected with a conflict
// error naming the value.
func (s *BrandService) Create(ctx context.Context, input CreateBrandInput) (*models.Brand, error) {
	if input.Name == "" {
		return nil, &utils.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	if err := s.checkNameConflict(ctx, input.Name, ""); err != nil {
		return nil, err
	}

	brand := models.Brand{
		Name:       input.Name,
		LogoURL:    input.LogoURL,
		WebsiteURL: input.WebsiteURL,
	}
	if err := s.db.WithContext(ctx).Create(&brand).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &brand, nil
}

// Update applies only the supplied fields to an existing brand.
func (s *BrandService) Update(ctx context.Context, id string, input UpdateBrandInput) (*models.Brand, error) {
	var brand models.Brand
	err := s.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &utils.NotFoundError{Entity: "brand", ID: id}
	}
	if err != nil {
		return nil, utils.TranslateDBError(err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, &utils.ValidationError{Field: "name", Reason: "must not be empty"}
		}
		if err := s.checkNameConflict(ctx, *input.Name, id); err != nil {
			return nil, err
		}
		updates["name"] = *input.Name
	}
	if input.LogoURL != nil {
		updates["logo_url"] = *input.LogoURL
	}
	if input.WebsiteURL != nil {
		updates["website_url"] = *input.WebsiteURL
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&brand).Updates(updates).Error; err != nil {
			return nil, utils.TranslateDBError(err)
		}
	}

	if err := s.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, utils.TranslateDBError(err)
	}
	return &brand, nil
}

// Delete removes a brand with no gyms. A brand that still owns gyms is
// rejected with a referential-integrity error naming the relation.
func (s *BrandService) Delete(ctx context.Context, id string) error {
	var brand models.Brand
	err := s.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &utils.NotFoundError{Entity: "brand", ID: id}
	}
	if err != nil {
		return utils.TranslateDBError(err)
	}

	var gymCount int64
	if err := s.db.WithContext(ctx).Model(&models.Gym{}).Where("brand_id = ?", id).Count(&gymCount).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	if gymCount > 0 {
		return &utils.ReferentialError{
			Relation: "gyms",
			Detail:   fmt.Sprintf("brand %s still has %d gym(s)", brand.Name, gymCount),
		}
	}

	if err := s.db.WithContext(ctx).Delete(&brand).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	return nil
}

// DeleteCascade is the admin dashboard's confirmed cascade path: it
// removes the brand's gyms with their route updates and crawl logs,
// then the brand itself, in one transaction.
func (s *BrandService) DeleteCascade(ctx context.Context, id string) error {
	var brand models.Brand
	err := s.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &utils.NotFoundError{Entity: "brand", ID: id}
	}
	if err != nil {
		return utils.TranslateDBError(err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var gymIDs []string
		if err := tx.Model(&models.Gym{}).Where("brand_id = ?", id).Pluck("id", &gymIDs).Error; err != nil {
			return err
		}
		if len(gymIDs) > 0 {
			if err := tx.Where("gym_id IN ?", gymIDs).Delete(&models.RouteUpdate{}).Error; err != nil {
				return err
			}
			if err := tx.Where("gym_id IN ?", gymIDs).Delete(&models.CrawlLog{}).Error; err != nil {
				return err
			}
			if err := tx.Where("brand_id = ?", id).Delete(&models.Gym{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&brand).Error
	})
	if err != nil {
		return utils.TranslateDBError(err)
	}
	return nil
}

func (s *BrandService) checkNameConflict(ctx context.Context, name, excludeID string) error {
	q := s.db.WithContext(ctx).Model(&models.Brand{}).Where("name = ?", name)
	if excludeID != "" {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return utils.TranslateDBError(err)
	}
	if count > 0 {
		return &utils.ConflictError{Field: "name", Value: name}
	}
	return nil
}
