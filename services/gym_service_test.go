package services

import (
	"context"
	"errors"
	"testing"

	"github.com/JinJinHistory/climb-hub/models"
	"github.com/JinJinHistory/climb-hub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGymCreateLoadsBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	brand := createTestBrand(t, db, "Climb Lab")

	gym, err := svc.Create(ctx, CreateGymInput{
		BrandID:         brand.ID,
		Name:            "Climb Lab Gangnam",
		BranchName:      "gangnam",
		InstagramURL:    "https://instagram.com/climblab_gangnam",
		InstagramHandle: "climblab_gangnam",
		Latitude:        new(float64),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, gym.ID)
	assert.True(t, gym.IsActive, "isActive defaults to true")
	assert.Equal(t, "Climb Lab", gym.Brand.Name, "reads come back joined with the brand")
}

func TestGymCreateRequiredFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	brand := createTestBrand(t, db, "Climb Lab")

	_, err := svc.Create(context.Background(), CreateGymInput{
		BrandID:    brand.ID,
		Name:       "Climb Lab Gangnam",
		BranchName: "gangnam",
		// instagram fields missing
	})
	var validation *utils.ValidationError
	require.True(t, errors.As(err, &validation))
}

func TestGymCreateUnknownBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)

	_, err := svc.Create(context.Background(), CreateGymInput{
		BrandID:         "no-such-brand",
		Name:            "Orphan",
		BranchName:      "nowhere",
		InstagramURL:    "https://instagram.com/orphan",
		InstagramHandle: "orphan",
	})
	var referential *utils.ReferentialError
	require.True(t, errors.As(err, &referential))
	assert.Equal(t, "brands", referential.Relation)
}

func TestGymCreateExplicitInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	brand := createTestBrand(t, db, "Climb Lab")

	gym, err := svc.Create(context.Background(), CreateGymInput{
		BrandID:         brand.ID,
		Name:            "Climb Lab Hongdae",
		BranchName:      "hongdae",
		InstagramURL:    "https://instagram.com/climblab_hongdae",
		InstagramHandle: "climblab_hongdae",
		IsActive:        boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, gym.IsActive, "explicit false must persist")
}

func TestGymHandleConflictIsGlobal(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	a := createTestBrand(t, db, "Apex")
	b := createTestBrand(t, db, "Zenith")
	createTestGym(t, db, a.ID, "gangnam")

	// Same handle under a different brand still conflicts.
	_, err := svc.Create(ctx, CreateGymInput{
		BrandID:         b.ID,
		Name:            "Zenith Gangnam",
		BranchName:      "gangnam",
		InstagramURL:    "https://instagram.com/climblab_gangnam",
		InstagramHandle: "climblab_gangnam",
	})
	var conflict *utils.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "instagramHandle", conflict.Field)
}

func TestGymBranchConflictScopedToBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	a := createTestBrand(t, db, "Apex")
	b := createTestBrand(t, db, "Zenith")
	createTestGym(t, db, a.ID, "gangnam")

	// Same branch name within the same brand conflicts.
	_, err := svc.Create(ctx, CreateGymInput{
		BrandID:         a.ID,
		Name:            "Apex Gangnam 2",
		BranchName:      "gangnam",
		InstagramURL:    "https://instagram.com/apex_gangnam2",
		InstagramHandle: "apex_gangnam2",
	})
	var conflict *utils.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "branchName", conflict.Field)

	// Same branch name under another brand is fine.
	_, err = svc.Create(ctx, CreateGymInput{
		BrandID:         b.ID,
		Name:            "Zenith Gangnam",
		BranchName:      "gangnam",
		InstagramURL:    "https://instagram.com/zenith_gangnam",
		InstagramHandle: "zenith_gangnam",
	})
	require.NoError(t, err)
}

func TestGymListActiveOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	brand := createTestBrand(t, db, "Climb Lab")
	active := createTestGym(t, db, brand.ID, "gangnam")
	inactive := createTestGym(t, db, brand.ID, "hongdae")
	_, err := svc.Update(ctx, inactive.ID, UpdateGymInput{IsActive: boolPtr(false)})
	require.NoError(t, err)

	gyms, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, gyms, 1)
	assert.Equal(t, active.ID, gyms[0].ID)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGymUpdatePartialAndPairRecheck(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	brand := createTestBrand(t, db, "Climb Lab")
	gym := createTestGym(t, db, brand.ID, "gangnam")
	other := createTestGym(t, db, brand.ID, "hongdae")

	// Moving gym onto other's branch name conflicts.
	_, err := svc.Update(ctx, gym.ID, UpdateGymInput{BranchName: strPtr("hongdae")})
	var conflict *utils.ConflictError
	require.True(t, errors.As(err, &conflict))

	// Untouched fields survive a partial update.
	updated, err := svc.Update(ctx, gym.ID, UpdateGymInput{Phone: strPtr("02-1234-5678")})
	require.NoError(t, err)
	assert.Equal(t, "gangnam", updated.BranchName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "02-1234-5678", *updated.Phone)
	assert.Equal(t, other.BranchName, "hongdae")
}

func TestGymUpdateUnknownBrandRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	brand := createTestBrand(t, db, "Climb Lab")
	gym := createTestGym(t, db, brand.ID, "gangnam")

	_, err := svc.Update(ctx, gym.ID, UpdateGymInput{BrandID: strPtr("no-such-brand")})
	var referential *utils.ReferentialError
	require.True(t, errors.As(err, &referential))
}

func TestGymDeleteCascadesChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	brand := createTestBrand(t, db, "Climb Lab")
	gym := createTestGym(t, db, brand.ID, "gangnam")

	_, err := NewRouteUpdateService(db, nil).Create(ctx, CreateRouteUpdateInput{
		GymID:      gym.ID,
		Type:       models.UpdateTypeNewSet,
		UpdateDate: "2024-03-15",
	})
	require.NoError(t, err)
	_, err = NewCrawlLogService(db).Create(ctx, CreateCrawlLogInput{
		GymID:     gym.ID,
		Status:    models.CrawlStatusSuccess,
		StartedAt: "2024-03-15T02:00:00Z",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, gym.ID))

	var updateCount, logCount int64
	require.NoError(t, db.Model(&models.RouteUpdate{}).Count(&updateCount).Error)
	require.NoError(t, db.Model(&models.CrawlLog{}).Count(&logCount).Error)
	assert.Zero(t, updateCount)
	assert.Zero(t, logCount)

	// The owning brand is untouched.
	got, err := NewBrandService(db).Get(ctx, brand.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestGymListByBrand(t *testing.T) {
	db := newTestDB(t)
	svc := NewGymService(db)
	ctx := context.Background()

	a := createTestBrand(t, db, "Apex")
	b := createTestBrand(t, db, "Zenith")
	createTestGym(t, db, a.ID, "gangnam")
	createTestGym(t, db, a.ID, "hongdae")
	createTestGym(t, db, b.ID, "mapo")

	gyms, err := svc.ListByBrand(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, gyms, 2)
}
