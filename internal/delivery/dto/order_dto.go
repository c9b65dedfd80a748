package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateOrderRequest struct {
	ProductID *uint `json:"product_id" validate:"required"`
	Quantity  *int  `json:"quantity" validate:"required,gt=0"`
}

type UpdateOrderRequest struct {
	ProductID *uint `json:"product_id"`
	Quantity  *int  `json:"quantity" validate:"omitempty,gt=0"`
}

// Response DTOs

type OrderResponse struct {
	ID         uint            `json:"id"`
	ProductID  uint            `json:"product_id"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}
