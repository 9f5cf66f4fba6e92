package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gym is one physical climbing-gym location ("branch") belonging to a Brand.
// branch_name is unique per brand; instagram_handle is unique globally.
type Gym struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid"`
	BrandID         string    `json:"brandId" gorm:"column:brand_id;type:uuid;not null;uniqueIndex:idx_gyms_brand_branch"`
	Name            string    `json:"name" gorm:"column:name;type:varchar(255);not null"`
	BranchName      string    `json:"branchName" gorm:"column:branch_name;type:varchar(255);not null;uniqueIndex:idx_gyms_brand_branch"`
	InstagramURL    string    `json:"instagramUrl" gorm:"column:instagram_url;not null"`
	InstagramHandle string    `json:"instagramHandle" gorm:"column:instagram_handle;type:varchar(255);uniqueIndex;not null"`
	Address         *string   `json:"address" gorm:"column:address"`
	Phone           *string   `json:"phone" gorm:"column:phone"`
	Latitude        *float64  `json:"latitude" gorm:"column:latitude"`
	Longitude       *float64  `json:"longitude" gorm:"column:longitude"`
	IsActive        bool      `json:"isActive" gorm:"column:is_active"`
	CreatedAt       time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt       time.Time `json:"updatedAt" gorm:"column:updated_at"`

	// Deleting a brand with gyms is blocked; deleting a gym cascades to
	// its route updates and crawl logs.
	Brand        Brand         `json:"brand,omitempty" gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	RouteUpdates []RouteUpdate `json:"routeUpdates,omitempty" gorm:"foreignKey:GymID"`
	CrawlLogs    []CrawlLog    `json:"crawlLogs,omitempty" gorm:"foreignKey:GymID"`
}

func (Gym) TableName() string {
	return "gyms"
}

func (g *Gym) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
