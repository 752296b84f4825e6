package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/usecase"
	"go-product-catalog/pkg/response"
	"go-product-catalog/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
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

// Create handles product creation
// @Summary Create a new product
// @Description Create a new product with a unique code
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} dto.CreateProductResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	res := h.productUsecase.Create(r.Context(), &req)
	if res.IsFailure() {
		h.fail(w, res.Err())
		return
	}

	response.JSON(w, http.StatusCreated, res.Value())
}

// GetAll handles the paginated product listing
// @Summary List products
// @Description List non-deleted products ordered by code, paginated
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(10)
// @Success 200 {object} dto.ProductListResponse
// @Router /products [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))

	res := h.productUsecase.GetAll(r.Context(), page, pageSize)
	if res.IsFailure() {
		h.fail(w, res.Err())
		return
	}

	response.JSON(w, http.StatusOK, res.Value())
}

// GetByID handles getting a product by ID
// @Summary Get product by ID
// @Description Get a non-deleted product by its ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	res := h.productUsecase.GetByID(r.Context(), id)
	if res.IsFailure() {
		h.fail(w, res.Err())
		return
	}

	response.JSON(w, http.StatusOK, res.Value())
}

// Update handles product update
// @Summary Update a product
// @Description Update a product's name, description, price and stock
// @Tags Products
// @Accept json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	res := h.productUsecase.Update(r.Context(), id, &req)
	if res.IsFailure() {
		h.fail(w, res.Err())
		return
	}

	response.NoContent(w)
}

// AdjustStock handles stock adjustment
// @Summary Adjust product stock
// @Description Apply a delta to a product's stock, never below zero
// @Tags Products
// @Accept json
// @Param id path string true "Product ID"
// @Param request body dto.AdjustStockRequest true "Adjust Stock Request"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id}/adjust-stock [post]
func (h *ProductHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req dto.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	res := h.productUsecase.AdjustStock(r.Context(), id, req.Delta)
	if res.IsFailure() {
		h.fail(w, res.Err())
		return
	}

	response.NoContent(w)
}

// Delete handles product soft-deletion
// @Summary Delete a product
// @Description Soft-delete a product by its ID
// @Tags Products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	res := h.productUsecase.Delete(r.Context(), id)
	if res.IsFailure() {
		h.fail(w, res.Err())
		return
	}

	response.NoContent(w)
}

func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid product ID")
		return uuid.Nil, false
	}
	return id, true
}

// fail maps a use-case failure to its transport status: validation and
// invariant failures are 400, not-found is 404, anything else is a store
// fault and stays generic.
func (h *ProductHandler) fail(w http.ResponseWriter, err error) {
	var validationErr *entity.ValidationError
	var invariantErr *entity.InvariantViolation

	switch {
	case errors.As(err, &validationErr), errors.As(err, &invariantErr):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrProductNotFound):
		response.NotFound(w, "Product not found")
	default:
		response.InternalServerError(w, "")
	}
}
