package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressit/ressit-pos-api/models"
	"github.com/ressit/ressit-pos-api/storage/memstore"
)

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := models.NewCategoriesRepository(memstore.New(), models.DefaultIDAssignAttempts)

	for _, name := range []string{"Soups", "Grill", "Desserts"} {
		require.NoError(t, repo.CreateCategory(ctx, &models.Category{Name: name}))
	}

	got, err := repo.GetCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 2, Name: "Grill"}, got)

	require.NoError(t, repo.UpdateCategory(ctx, 2, &models.Category{ID: 17, Name: "Mangal", ImageURL: "m.png"}))
	got, err = repo.GetCategory(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, &models.Category{ID: 2, Name: "Mangal", ImageURL: "m.png"}, got, "update keeps the stored id")

	_, err = repo.GetCategory(ctx, 17)
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = repo.UpdateCategory(ctx, 99, &models.Category{Name: "Ghost"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	err = repo.DeleteCategory(ctx, 99)
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := repo.GetAllCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetAllOnEmptyCollectionIsEmptySlice(t *testing.T) {
	repo := models.NewAdminsRepository(memstore.New(), models.DefaultIDAssignAttempts)

	all, err := repo.GetAllAdmins(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := models.NewAdminsRepository(memstore.New(), models.DefaultIDAssignAttempts)
	require.NoError(t, repo.CreateAdmin(ctx, &models.Admin{
		FirstName: "Ayse", Username: "ayse", PasswordHash: "abc", RestaurantName: "Lokanta",
	}))

	profile, err := repo.Login(ctx, "ayse", "abc")
	require.NoError(t, err)
	assert.Equal(t, models.AdminProfile{ID: 1, FirstName: "Ayse", Username: "ayse", RestaurantName: "Lokanta"}, *profile)

	_, err = repo.Login(ctx, "ayse ", "abc")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	_, err = repo.Login(ctx, "ayse", "ABC")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestCreateOrderParsesDateInLocation(t *testing.T) {
	ctx := context.Background()
	istanbul := time.FixedZone("TRT", 3*60*60)
	repo := models.NewOrdersRepository(memstore.New(), models.DefaultIDAssignAttempts, istanbul)

	order := &models.Order{
		OrderDateString: "2024-05-17 / 01:30",
		TotalPrice:      decimal.RequireFromString("12.00"),
	}
	require.NoError(t, repo.CreateOrder(ctx, order))
	assert.True(t, time.Date(2024, 5, 16, 22, 30, 0, 0, time.UTC).Equal(order.OrderDate))

	inWindow, err := repo.GetOrdersBetween(ctx,
		time.Date(2024, 5, 17, 0, 0, 0, 0, istanbul),
		time.Date(2024, 5, 17, 23, 59, 59, 0, istanbul))
	require.NoError(t, err)
	assert.Len(t, inWindow, 1)

	bad := &models.Order{OrderDateString: "2024-05-17T01:30"}
	err = repo.CreateOrder(ctx, bad)
	assert.ErrorIs(t, err, models.ErrInvalidOrderDate)
	assert.Zero(t, bad.ID, "no id is assigned to a rejected order")

	all, err := repo.GetAllOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	repo := models.NewSettingsRepository(memstore.New(), models.DefaultIDAssignAttempts)

	s, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)

	require.NoError(t, repo.CreateSettings(ctx, &models.Settings{ReportPassword: "0000"}))
	s, err = repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Settings{ID: 1, ReportPassword: "0000"}, s)
}
