package usecase

import (
	"context"
	"errors"

	"go-ecommerce-api/internal/converter"
	"go-ecommerce-api/internal/delivery/dto"
	"go-ecommerce-api/internal/domain/entity"
	"go-ecommerce-api/internal/domain/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound             = errors.New("order not found")
	ErrAssociatedProductNotFound = errors.New("associated product not found")
)

type OrderUsecase interface {
	Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetAll(ctx context.Context) ([]dto.OrderResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id uint) error
}

type orderUsecase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderUsecase(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderUsecase {
	return &orderUsecase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (u *orderUsecase) Create(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	product, err := u.productRepo.FindByID(ctx, *req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	order := &entity.Order{
		ProductID:  product.ID,
		Quantity:   *req.Quantity,
		TotalPrice: totalPrice(product.Price, *req.Quantity),
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return converter.OrderToResponse(order), nil
}

func (u *orderUsecase) GetAll(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := u.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return converter.OrdersToResponses(orders), nil
}

func (u *orderUsecase) GetByID(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	return converter.OrderToResponse(order), nil
}

// Update applies a partial update. The stored total price is recomputed
// whenever the product or the quantity changes; if neither is supplied it
// is left as is.
func (u *orderUsecase) Update(ctx context.Context, id uint, req *dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	switch {
	case req.ProductID != nil:
		product, err := u.productRepo.FindByID(ctx, *req.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}

		order.ProductID = product.ID
		if req.Quantity != nil {
			order.Quantity = *req.Quantity
		}
		order.TotalPrice = totalPrice(product.Price, order.Quantity)

	case req.Quantity != nil:
		// Quantity alone changed: reprice against the order's current product.
		product, err := u.productRepo.FindByID(ctx, order.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrAssociatedProductNotFound
		}

		order.Quantity = *req.Quantity
		order.TotalPrice = totalPrice(product.Price, order.Quantity)
	}

	if err := u.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return converter.OrderToResponse(order), nil
}

func (u *orderUsecase) Delete(ctx context.Context, id uint) error {
	order, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	return u.orderRepo.Delete(ctx, id)
}

// totalPrice multiplies a scale-2 price by a whole quantity; the result
// stays within the scale the column enforces, so no rounding is applied.
func totalPrice(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}
