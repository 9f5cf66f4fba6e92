package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/JinJinHistory/climb-hub/database"
	"github.com/JinJinHistory/climb-hub/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. Each
// test gets its own named database so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func createTestBrand(t *testing.T, db *gorm.DB, name string) *models.Brand {
	t.Helper()
	brand, err := NewBrandService(db).Create(context.Background(), CreateBrandInput{Name: name})
	require.NoError(t, err)
	return brand
}

func createTestGym(t *testing.T, db *gorm.DB, brandID, branch string) *models.Gym {
	t.Helper()
	gym, err := NewGymService(db).Create(context.Background(), CreateGymInput{
		BrandID:         brandID,
		Name:            "Climb Lab " + branch,
		BranchName:      branch,
		InstagramURL:    "https://instagram.com/climblab_" + branch,
		InstagramHandle: "climblab_" + branch,
	})
	require.NoError(t, err)
	return gym
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

// fakePublisher records published events for assertions.
type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

type publishedEvent struct {
	Event string
	Data  interface{}
}

func (p *fakePublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Event: event, Data: data})
}

func (p *fakePublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}
