package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is a climbing-gym chain or operator owning one or more locations.
type Brand struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string    `json:"name" gorm:"column:name;type:varchar(255);uniqueIndex;not null"`
	LogoURL    *string   `json:"logoUrl" gorm:"column:logo_url"`
	WebsiteURL *string   `json:"websiteUrl" gorm:"column:website_url"`
	CreatedAt  time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"column:updated_at"`

	Gyms []Gym `json:"gyms,omitempty" gorm:"foreignKey:BrandID"`
}

func (Brand) TableName() string {
	return "brands"
}

// BeforeCreate assigns a UUID when the caller didn't supply one.
func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
