package handler

import (
	"encoding/json"
	"net/http"

	"go-ecommerce-api/internal/delivery/dto"
	"go-ecommerce-api/internal/usecase"
	"go-ecommerce-api/pkg/response"
	"go-ecommerce-api/pkg/validator"

	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUsecase
	validator    *validator.CustomValidator
}

func NewOrderHandler(orderUsecase usecase.OrderUsecase, validator *validator.CustomValidator) *OrderHandler {
	return &OrderHandler{
		orderUsecase: orderUsecase,
		validator:    validator,
	}
}

// GetAll handles listing all orders
// @Summary Retrieve all orders
// @Description Get all orders
// @Tags Orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 500 {object} response.ErrorBody
// @Router /orders [get]
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.GetAll(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Error fetching orders")
		response.Error(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	response.JSON(w, http.StatusOK, orders)
}

// GetByID handles getting an order by ID
// @Summary Get an order by ID
// @Description Get an order by its ID
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.orderUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.Error(w, http.StatusNotFound, "Order not found")
		default:
			logrus.WithError(err).Error("Error fetching order")
			response.Error(w, http.StatusInternalServerError, "Failed to fetch order")
		}
		return
	}

	response.JSON(w, http.StatusOK, order)
}

// Create handles order creation
// @Summary Create a new order
// @Description Create an order for a product; total price is price times quantity
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ProductID == nil || req.Quantity == nil {
		response.Error(w, http.StatusBadRequest, "Product ID and quantity are required")
		return
	}

	if *req.Quantity <= 0 {
		response.Error(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationError(err))
		return
	}

	order, err := h.orderUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.Error(w, http.StatusNotFound, "Product not found")
		default:
			logrus.WithError(err).Error("Error creating order")
			response.Error(w, http.StatusInternalServerError, "Failed to create order")
		}
		return
	}

	response.JSON(w, http.StatusCreated, order)
}

// Update handles a partial order update
// @Summary Update an order
// @Description Update an order by its ID; total price is recomputed when the product or quantity changes
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body dto.UpdateOrderRequest true "Update Order Request"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req dto.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Quantity != nil && *req.Quantity <= 0 {
		response.Error(w, http.StatusBadRequest, "Quantity must be a positive integer")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationError(err))
		return
	}

	order, err := h.orderUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.Error(w, http.StatusNotFound, "Order not found")
		case usecase.ErrProductNotFound:
			response.Error(w, http.StatusNotFound, "Product not found")
		case usecase.ErrAssociatedProductNotFound:
			response.Error(w, http.StatusNotFound, "Associated product not found")
		default:
			logrus.WithError(err).Error("Error updating order")
			response.Error(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	response.JSON(w, http.StatusOK, order)
}

// Delete handles order deletion
// @Summary Delete an order
// @Description Delete an order by its ID
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.orderUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrOrderNotFound:
			response.Error(w, http.StatusNotFound, "Order not found")
		default:
			logrus.WithError(err).Error("Error deleting order")
			response.Error(w, http.StatusInternalServerError, "Failed to delete order")
		}
		return
	}

	response.NoContent(w)
}
