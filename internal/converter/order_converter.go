package converter

import (
	"go-ecommerce-api/internal/delivery/dto"
	"go-ecommerce-api/internal/domain/entity"
)

func OrderToResponse(order *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:         order.ID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	}
}

func OrdersToResponses(orders []entity.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *OrderToResponse(&orders[i]))
	}
	return responses
}
