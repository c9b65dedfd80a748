package dto

import (
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=100"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
}

// Update fields are pointers so that an absent field can be told apart
// from a zero value; only supplied fields are written.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// Response DTOs

type ProductResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}
