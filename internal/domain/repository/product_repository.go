package repository

import (
	"go-product-catalog/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository is the persistence collaborator for the Product
// aggregate. Methods take a *gorm.DB so the use-case layer controls the
// unit-of-work scope (plain connection for reads, transaction for writes).
// All reads see live (non-deleted) rows only.
type ProductRepository interface {
	Create(db *gorm.DB, product *entity.Product) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Product, int64, error)
	ExistsByCode(db *gorm.DB, code string) (bool, error)
	Update(db *gorm.DB, product *entity.Product) error
}
