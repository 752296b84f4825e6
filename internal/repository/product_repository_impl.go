package repository

import (
	"errors"

	"go-product-catalog/internal/domain/entity"
	domainRepo "go-product-catalog/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type productRepository struct {
}

func NewProductRepository() domainRepo.ProductRepository {
	return &productRepository{}
}

// live is the single place the soft-delete predicate is applied. Every read
// goes through it; deleted rows are invisible to the rest of the system.
func live(db *gorm.DB) *gorm.DB {
	return db.Model(&entity.Product{}).Where("is_deleted = ?", false)
}

func (r *productRepository) Create(db *gorm.DB, product *entity.Product) error {
	return db.Create(product).Error
}

func (r *productRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := live(db).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindPage(db *gorm.DB, limit, offset int) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	if err := live(db).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := live(db).Order("code ASC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ExistsByCode(db *gorm.DB, code string) (bool, error) {
	var count int64
	if err := live(db).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productRepository) Update(db *gorm.DB, product *entity.Product) error {
	return db.Save(product).Error
}
