package usecase

import (
	"context"
	"errors"

	"go-ecommerce-api/internal/converter"
	"go-ecommerce-api/internal/delivery/dto"
	"go-ecommerce-api/internal/domain/entity"
	"go-ecommerce-api/internal/domain/repository"
)

var ErrProductNotFound = errors.New("product not found")

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetAll(ctx context.Context) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productUsecase struct {
	productRepo repository.ProductRepository
}

func NewProductUsecase(productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{productRepo: productRepo}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) GetAll(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Update(ctx context.Context, id uint, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Delete(ctx context.Context, id uint) error {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	return u.productRepo.Delete(ctx, id)
}
