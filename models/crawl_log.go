package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Crawl outcome statuses, stored lowercase as the crawler reports them.
const (
	CrawlStatusSuccess = "success"
	CrawlStatusFailed  = "failed"
	CrawlStatusPartial = "partial"
)

// ValidCrawlStatus reports whether s is a known crawl status.
func ValidCrawlStatus(s string) bool {
	switch s {
	case CrawlStatusSuccess, CrawlStatusFailed, CrawlStatusPartial:
		return true
	}
	return false
}

// CrawlLog records one ingestion run's outcome for a gym's Instagram feed.
// Immutable after creation except for the status/completion fields.
type CrawlLog struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid"`
	GymID        string     `json:"gymId" gorm:"column:gym_id;type:uuid;not null;index"`
	Status       string     `json:"status" gorm:"column:status;type:varchar(20);not null"`
	PostsFound   int        `json:"postsFound" gorm:"column:posts_found;not null"`
	PostsNew     int        `json:"postsNew" gorm:"column:posts_new;not null"`
	ErrorMessage *string    `json:"errorMessage" gorm:"column:error_message"`
	StartedAt    time.Time  `json:"startedAt" gorm:"column:started_at;not null"`
	CompletedAt  *time.Time `json:"completedAt" gorm:"column:completed_at"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"column:created_at"`

	Gym Gym `json:"gym,omitempty" gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE"`
}

func (CrawlLog) TableName() string {
	return "crawl_logs"
}

func (l *CrawlLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
