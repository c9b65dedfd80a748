package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go-ecommerce-api/internal/delivery/dto"
	"go-ecommerce-api/internal/domain/entity"
	"go-ecommerce-api/internal/repository"
	"go-ecommerce-api/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupUsecases opens an in-memory SQLite database with foreign keys left
// off, so tests can construct orphaned rows the cascade would normally
// prevent.
func setupUsecases(t *testing.T) (usecase.OrderUsecase, usecase.ProductUsecase, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", "#", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Product{}, &entity.Order{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	return usecase.NewOrderUsecase(orderRepo, productRepo), usecase.NewProductUsecase(productRepo), db
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func TestOrderCreate(t *testing.T) {
	orderUsecase, _, db := setupUsecases(t)
	ctx := context.Background()

	product := entity.Product{Name: "Gadget", Price: decimal.RequireFromString("10.00")}
	require.NoError(t, db.Create(&product).Error)

	t.Run("derives total price at write time", func(t *testing.T) {
		order, err := orderUsecase.Create(ctx, &dto.CreateOrderRequest{
			ProductID: uintPtr(product.ID),
			Quantity:  intPtr(3),
		})
		require.NoError(t, err)
		assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("30.00")))
	})

	t.Run("fails when the product does not exist", func(t *testing.T) {
		_, err := orderUsecase.Create(ctx, &dto.CreateOrderRequest{
			ProductID: uintPtr(99999),
			Quantity:  intPtr(1),
		})
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})
}

func TestOrderUpdate(t *testing.T) {
	orderUsecase, _, db := setupUsecases(t)
	ctx := context.Background()

	t.Run("total is stale after a later price change, not recomputed", func(t *testing.T) {
		product := entity.Product{Name: "Drifting", Price: decimal.RequireFromString("10.00")}
		require.NoError(t, db.Create(&product).Error)

		created, err := orderUsecase.Create(ctx, &dto.CreateOrderRequest{
			ProductID: uintPtr(product.ID),
			Quantity:  intPtr(2),
		})
		require.NoError(t, err)

		require.NoError(t, db.Model(&entity.Product{}).Where("id = ?", product.ID).
			Update("price", decimal.RequireFromString("99.00")).Error)

		got, err := orderUsecase.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("20.00")))

		// The next quantity write reprices against the current product price.
		updated, err := orderUsecase.Update(ctx, created.ID, &dto.UpdateOrderRequest{Quantity: intPtr(2)})
		require.NoError(t, err)
		assert.True(t, updated.TotalPrice.Equal(decimal.RequireFromString("198.00")))
	})

	t.Run("fails when the order's product row is gone", func(t *testing.T) {
		product := entity.Product{Name: "Doomed", Price: decimal.RequireFromString("5.00")}
		require.NoError(t, db.Create(&product).Error)

		created, err := orderUsecase.Create(ctx, &dto.CreateOrderRequest{
			ProductID: uintPtr(product.ID),
			Quantity:  intPtr(1),
		})
		require.NoError(t, err)

		// Foreign keys are off in this setup, so the order row survives.
		require.NoError(t, db.Delete(&entity.Product{}, product.ID).Error)

		_, err = orderUsecase.Update(ctx, created.ID, &dto.UpdateOrderRequest{Quantity: intPtr(2)})
		assert.ErrorIs(t, err, usecase.ErrAssociatedProductNotFound)
	})

	t.Run("fails for an unknown order", func(t *testing.T) {
		_, err := orderUsecase.Update(ctx, 99999, &dto.UpdateOrderRequest{Quantity: intPtr(2)})
		assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
	})
}

func TestOrderDelete(t *testing.T) {
	orderUsecase, _, _ := setupUsecases(t)

	err := orderUsecase.Delete(context.Background(), 99999)
	assert.ErrorIs(t, err, usecase.ErrOrderNotFound)
}

func TestProductDelete(t *testing.T) {
	_, productUsecase, _ := setupUsecases(t)

	err := productUsecase.Delete(context.Background(), 99999)
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
}
