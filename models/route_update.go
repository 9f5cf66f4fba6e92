package models

import (
	"time"

	"github.com/JinJinHistory/climb-hub/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Route update event types. One canonical set, uppercase end-to-end.
const (
	UpdateTypeNewSet       = "NEWSET"
	UpdateTypeRemoval      = "REMOVAL"
	UpdateTypeAnnouncement = "ANNOUNCEMENT"
)

// ValidUpdateType reports whether t is one of the known event types.
func ValidUpdateType(t string) bool {
	switch t {
	case UpdateTypeNewSet, UpdateTypeRemoval, UpdateTypeAnnouncement:
		return true
	}
	return false
}

// RouteUpdate is a dated event describing routes added, removed, or
// announced at a gym, usually sourced from an Instagram post.
type RouteUpdate struct {
	ID               string           `json:"id" gorm:"primaryKey;type:uuid"`
	GymID            string           `json:"gymId" gorm:"column:gym_id;type:uuid;not null;index"`
	Type             string           `json:"type" gorm:"column:type;type:varchar(20);not null;index"`
	UpdateDate       types.DateOnly   `json:"updateDate" gorm:"column:update_date;type:date;not null;index"`
	Title            *string          `json:"title" gorm:"column:title"`
	Description      *string          `json:"description" gorm:"column:description"`
	InstagramPostURL *string          `json:"instagramPostUrl" gorm:"column:instagram_post_url"`
	InstagramPostID  *string          `json:"instagramPostId" gorm:"column:instagram_post_id"`
	ImageURLs        types.StringList `json:"imageUrls" gorm:"column:image_urls;type:jsonb"`
	RawCaption       *string          `json:"rawCaption" gorm:"column:raw_caption"`
	ParsedData       types.JSONMap    `json:"parsedData" gorm:"column:parsed_data;type:jsonb"`
	IsVerified       bool             `json:"isVerified" gorm:"column:is_verified"`
	CreatedAt        time.Time        `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" gorm:"column:updated_at"`

	Gym Gym `json:"gym,omitempty" gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE"`
}

func (RouteUpdate) TableName() string {
	return "route_updates"
}

func (u *RouteUpdate) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
