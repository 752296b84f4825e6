package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,max=20"`
	Name        string          `json:"name" validate:"required,max=50"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=50"`
	Description string          `json:"description" validate:"max=1000"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// Response DTOs

type CreateProductResponse struct {
	ID uuid.UUID `json:"id"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt"`
}

// ProductListItem is the compact projection used by the paginated listing.
type ProductListItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ProductListResponse struct {
	Items      []ProductListItem `json:"items"`
	TotalItems int64             `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
}
