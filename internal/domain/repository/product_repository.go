package repository

import (
	"context"

	"go-ecommerce-api/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindAll(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}
