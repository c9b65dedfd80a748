package repository

import (
	"context"

	"go-ecommerce-api/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindAll(ctx context.Context) ([]entity.Order, error)
	FindByID(ctx context.Context, id uint) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uint) error
}
