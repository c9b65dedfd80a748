package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-ecommerce-api/internal/delivery/dto"
	"go-ecommerce-api/internal/usecase"
	"go-ecommerce-api/pkg/response"
	"go-ecommerce-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// GetAll handles listing all products
// @Summary Retrieve all products
// @Description Get all products
// @Tags Products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} response.ErrorBody
// @Router /products [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.GetAll(r.Context())
	if err != nil {
		logrus.WithError(err).Error("Error fetching products")
		response.Error(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// GetByID handles getting a product by ID
// @Summary Get a product by ID
// @Description Get a product by its ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.Error(w, http.StatusNotFound, "Product not found")
		default:
			logrus.WithError(err).Error("Error fetching product")
			response.Error(w, http.StatusInternalServerError, "Failed to fetch product")
		}
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Create handles product creation
// @Summary Create a new product
// @Description Create a new product with a name, optional description and price
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Price == nil {
		response.Error(w, http.StatusBadRequest, "Name and price are required")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationError(err))
		return
	}

	if req.Price.IsNegative() {
		response.Error(w, http.StatusBadRequest, "Price must be a positive number")
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		logrus.WithError(err).Error("Error creating product")
		response.Error(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	response.JSON(w, http.StatusCreated, product)
}

// Update handles a partial product update
// @Summary Update a product
// @Description Update a product by its ID; only supplied fields change
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.Error(w, http.StatusBadRequest, h.validator.FormatValidationError(err))
		return
	}

	if req.Price != nil && req.Price.IsNegative() {
		response.Error(w, http.StatusBadRequest, "Price must be a positive number")
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.Error(w, http.StatusNotFound, "Product not found")
		default:
			logrus.WithError(err).Error("Error updating product")
			response.Error(w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Delete handles product deletion
// @Summary Delete a product
// @Description Delete a product by its ID; dependent orders are removed by cascade
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorBody
// @Failure 500 {object} response.ErrorBody
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrProductNotFound:
			response.Error(w, http.StatusNotFound, "Product not found")
		default:
			logrus.WithError(err).Error("Error deleting product")
			response.Error(w, http.StatusInternalServerError, "Failed to delete product")
		}
		return
	}

	response.NoContent(w)
}

func parseID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
