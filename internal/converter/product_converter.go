package converter

import (
	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
)

// ProductToResponse converts a Product entity to its full projection DTO.
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Code:        product.Code,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToListItems converts a page of products to the compact listing
// projection.
func ProductsToListItems(products []entity.Product) []dto.ProductListItem {
	items := make([]dto.ProductListItem, len(products))
	for i, product := range products {
		items[i] = dto.ProductListItem{
			Code: product.Code,
			Name: product.Name,
		}
	}
	return items
}
