package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yeremiapane/tailor-records/apperrors"
	"github.com/yeremiapane/tailor-records/config"
	"github.com/yeremiapane/tailor-records/database"
	"github.com/yeremiapane/tailor-records/models"
	"github.com/yeremiapane/tailor-records/repository"
)

func setupRepo(t *testing.T, seed bool) (*repository.CustomerRepository, *gorm.DB) {
	t.Helper()
	db, err := config.InitDB(&config.Config{
		AppEnv:   "test",
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "shop.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	if seed {
		_, err := database.Seed(db)
		require.NoError(t, err)
	}
	t.Cleanup(func() { _ = config.CloseDB(db) })
	return repository.NewCustomerRepository(db), db
}

func countCustomers(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&n).Error)
	return n
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t, false)
	ctx := context.Background()

	upper := models.MeasurementUpper
	in := models.CustomerInput{
		CustomerName:    "Sara",
		Phone:           "0555000111",
		Gender:          "Female",
		Chest:           lo.ToPtr(88.5),
		Waist:           lo.ToPtr(66.0),
		Shoulder:        lo.ToPtr(37.0),
		SleeveLength:    lo.ToPtr(58.0),
		Armhole:         lo.ToPtr(41.0),
		Neck:            lo.ToPtr(33.5),
		Hips:            lo.ToPtr(95.0),
		Inseam:          lo.ToPtr(77.0),
		Thigh:           lo.ToPtr(54.0),
		Knee:            lo.ToPtr(36.0),
		MeasurementType: &upper,
		Notes:           lo.ToPtr("silk only"),
	}

	id, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.NotZero(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, in.CustomerName, got.CustomerName)
	assert.Equal(t, in.Phone, got.Phone)
	assert.Equal(t, in.Gender, got.Gender)
	assert.Equal(t, in.Chest, got.Chest)
	assert.Equal(t, in.Waist, got.Waist)
	assert.Equal(t, in.Shoulder, got.Shoulder)
	assert.Equal(t, in.SleeveLength, got.SleeveLength)
	assert.Equal(t, in.Armhole, got.Armhole)
	assert.Equal(t, in.Neck, got.Neck)
	assert.Equal(t, in.Hips, got.Hips)
	assert.Equal(t, in.Inseam, got.Inseam)
	assert.Equal(t, in.Thigh, got.Thigh)
	assert.Equal(t, in.Knee, got.Knee)
	assert.Equal(t, in.MeasurementType, got.MeasurementType)
	assert.Equal(t, in.Notes, got.Notes)
	assert.Equal(t, 0, got.TotalOrders)
	assert.Nil(t, got.LastOrderDate)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestCreateDefaultsMeasurementType(t *testing.T) {
	repo, _ := setupRepo(t, false)
	ctx := context.Background()

	id, err := repo.Create(ctx, models.CustomerInput{CustomerName: "A", Phone: "1", Gender: "M"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.MeasurementType)
	assert.Equal(t, models.MeasurementBoth, *got.MeasurementType)
	assert.Equal(t, 0, got.TotalOrders)
	assert.Nil(t, got.Chest)
	assert.Nil(t, got.Notes)
}

func TestCreateRejectsMissingRequiredFields(t *testing.T) {
	cases := map[string]models.CustomerInput{
		"no name":   {Phone: "1", Gender: "M"},
		"no phone":  {CustomerName: "A", Gender: "M"},
		"no gender": {CustomerName: "A", Phone: "1"},
		"empty":     {},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			repo, db := setupRepo(t, false)

			id, err := repo.Create(context.Background(), in)
			assert.Zero(t, id)
			assert.True(t, apperrors.IsValidation(err), "got %v", err)
			assert.Equal(t, int64(0), countCustomers(t, db))
		})
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo, _ := setupRepo(t, true)

	got, err := repo.GetByID(context.Background(), 9999)
	assert.Nil(t, got)
	assert.True(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsStorage(err))
}

func TestListOrderAndSearch(t *testing.T) {
	repo, _ := setupRepo(t, true)
	ctx := context.Background()

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{3, 2, 1}, lo.Map(all, func(c models.Customer, _ int) uint { return c.ID }))

	byPhone, err := repo.List(ctx, "98765")
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "0559876543", byPhone[0].Phone)

	byName, err := repo.List(ctx, "خالد")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, uint(3), byName[0].ID)

	none, err := repo.List(ctx, "no-such-customer")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSearchTermIsBoundNotInterpolated(t *testing.T) {
	repo, db := setupRepo(t, true)

	got, err := repo.List(context.Background(), "' OR 1=1 --")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int64(3), countCustomers(t, db))
}

func TestUpdateReplacesAllFields(t *testing.T) {
	repo, _ := setupRepo(t, false)
	ctx := context.Background()

	id, err := repo.Create(ctx, models.CustomerInput{
		CustomerName: "Old",
		Phone:        "100",
		Gender:       "Male",
		Chest:        lo.ToPtr(100.0),
		Notes:        lo.ToPtr("keep?"),
	})
	require.NoError(t, err)
	before, err := repo.GetByID(ctx, id)
	require.NoError(t, err)

	n, err := repo.Update(ctx, id, models.CustomerInput{
		CustomerName: "New",
		Phone:        "200",
		Gender:       "Male",
		Waist:        lo.ToPtr(80.0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	after, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", after.CustomerName)
	assert.Equal(t, "200", after.Phone)
	assert.Equal(t, lo.ToPtr(80.0), after.Waist)
	assert.Nil(t, after.Chest, "omitted measurement must be cleared")
	assert.Nil(t, after.Notes, "omitted notes must be cleared")
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestUpdateAllowsBlankRequiredFields(t *testing.T) {
	repo, _ := setupRepo(t, true)
	ctx := context.Background()

	n, err := repo.Update(ctx, 1, models.CustomerInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, got.CustomerName)
	assert.Empty(t, got.Phone)
	assert.Empty(t, got.Gender)
}

func TestUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	repo, _ := setupRepo(t, true)
	ctx := context.Background()

	before, err := repo.ExportAll(ctx)
	require.NoError(t, err)

	n, err := repo.Update(ctx, 9999, models.CustomerInput{CustomerName: "X", Phone: "X", Gender: "X"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	after, err := repo.ExportAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	repo, db := setupRepo(t, true)
	ctx := context.Background()

	statsBefore, err := repo.Stats(ctx)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Order{CustomerID: 2, GarmentType: "Dress"}).Error)

	n, err := repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.NotContains(t, lo.Map(list, func(c models.Customer, _ int) uint { return c.ID }), uint(2))

	statsAfter, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, statsBefore.TotalCustomers-1, statsAfter.TotalCustomers)

	// orders are not cascaded
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Where("customerId = ?", 2).Count(&orders).Error)
	assert.Equal(t, int64(1), orders)

	n, err = repo.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestStatsOnSeedData(t *testing.T) {
	repo, _ := setupRepo(t, true)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CustomerStats{
		TotalCustomers:  3,
		MaleCustomers:   0,
		FemaleCustomers: 0,
		TotalOrders:     10,
	}, stats)
}

func TestStatsCountsLiteralGenders(t *testing.T) {
	repo, _ := setupRepo(t, false)
	ctx := context.Background()

	for _, g := range []string{"Male", "Male", "Female", "male", "M"} {
		_, err := repo.Create(ctx, models.CustomerInput{CustomerName: "c", Phone: "p", Gender: g})
		require.NoError(t, err)
	}

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.MaleCustomers)
	assert.Equal(t, int64(1), stats.FemaleCustomers)
	assert.Equal(t, int64(0), stats.TotalOrders)
}

func TestStatsOnEmptyStore(t *testing.T) {
	repo, _ := setupRepo(t, false)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.CustomerStats{}, stats)
}

func TestExportAllAscending(t *testing.T) {
	repo, _ := setupRepo(t, true)

	all, err := repo.ExportAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, lo.Map(all, func(c models.Customer, _ int) uint { return c.ID }))
}

func TestStorageFailureIsTyped(t *testing.T) {
	repo, db := setupRepo(t, true)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.List(context.Background(), "")
	assert.True(t, apperrors.IsStorage(err))
	assert.False(t, apperrors.IsNotFound(err))

	_, err = repo.GetByID(context.Background(), 1)
	assert.True(t, apperrors.IsStorage(err))
}
