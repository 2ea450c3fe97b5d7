package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gashtstore/admin/internal/models"
	"github.com/gashtstore/admin/internal/repo"
)

func newTestService(t *testing.T) *StoreService {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.AdminUser{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ActivityLog{},
	))

	return New(repo.New(gdb))
}

func validInput() ProductInput {
	return ProductInput{
		Name:     "Classic Istanbul T-Shirt",
		Price:    29.99,
		Category: "T-Shirts",
		Stock:    50,
	}
}

func TestCreateProductPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validInput())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)

	found := 0
	for _, p := range products {
		if p.ID == created.ID {
			found++
		}
	}
	require.Equal(t, 1, found)
}

func TestCreateProductInvalidRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := map[string]ProductInput{
		"empty name":     {Name: "", Price: 10, Category: "Misc", Stock: 1},
		"negative price": {Name: "x", Price: -1, Category: "Misc", Stock: 1},
		"negative stock": {Name: "x", Price: 10, Category: "Misc", Stock: -1},
		"empty category": {Name: "x", Price: 10, Category: "", Stock: 1},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, input)
			require.Error(t, err)
			_, ok := AsValidation(err)
			require.True(t, ok, "expected a validation error, got %v", err)
		})
	}

	total, err := svc.Repo.CountProducts(ctx)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCreateProductFieldErrors(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateProduct(context.Background(), ProductInput{Name: "", Price: -5, Category: "Misc", Stock: 0})
	ve, ok := AsValidation(err)
	require.True(t, ok)
	require.Contains(t, ve.Fields, "name")
	require.Contains(t, ve.Fields, "price")
	require.NotContains(t, ve.Fields, "category")
}

func TestEditProductNotFound(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.EditProduct(ctx, 999, validInput())
	require.ErrorIs(t, err, ErrNotFound)

	total, err := svc.Repo.CountProducts(ctx)
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestEditProductKeepsImageWhenNoneUploaded(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	input := validInput()
	input.ImagePath = "/uploads/old.png"
	created, err := svc.CreateProduct(ctx, input)
	require.NoError(t, err)

	edit := validInput()
	edit.Name = "Renamed"
	updated, err := svc.EditProduct(ctx, created.ID, edit)
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "/uploads/old.png", updated.ImagePath)
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.GetProduct(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := newTestService(t)
	require.ErrorIs(t, svc.DeleteProduct(context.Background(), 999), ErrNotFound)
}

func TestDeleteProductReferencedByOrderRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Repo.CreateOrder(ctx, &models.Order{
		Status:    "paid",
		Total:     created.Price * 2,
		OrderDate: time.Now().UTC(),
		Items: []models.OrderItem{{
			ProductID: created.ID,
			Quantity:  2,
			UnitPrice: created.Price,
		}},
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.DeleteProduct(ctx, created.ID), ErrProductInUse)

	// The product must still be there.
	_, err = svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
}

func TestActivityLoggedOnProductChanges(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.EditProduct(ctx, created.ID, validInput())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	recent, err := svc.Repo.RecentActivity(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	types := []string{recent[0].ActionType, recent[1].ActionType, recent[2].ActionType}
	require.Contains(t, types, "product_created")
	require.Contains(t, types, "product_edited")
	require.Contains(t, types, "product_deleted")
}
