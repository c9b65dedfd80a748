package converter

import (
	"go-ecommerce-api/internal/delivery/dto"
	"go-ecommerce-api/internal/domain/entity"
)

func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
}

// ProductsToResponses never returns nil so an empty list serializes as [].
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ProductToResponse(&products[i]))
	}
	return responses
}
