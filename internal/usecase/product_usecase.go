package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-product-catalog/internal/converter"
	"go-product-catalog/internal/delivery/dto"
	"go-product-catalog/internal/domain/entity"
	"go-product-catalog/internal/domain/repository"
	"go-product-catalog/pkg/pagination"
	"go-product-catalog/pkg/result"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ProductUsecase interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) result.Result[*dto.CreateProductResponse]
	GetByID(ctx context.Context, id uuid.UUID) result.Result[*dto.ProductResponse]
	GetAll(ctx context.Context, page, pageSize int) result.Result[*dto.ProductListResponse]
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) result.Result[result.Unit]
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) result.Result[result.Unit]
	Delete(ctx context.Context, id uuid.UUID) result.Result[result.Unit]
}

type productUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	productRepo repository.ProductRepository
}

func NewProductUsecase(db *gorm.DB, log *logrus.Logger, productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{
		db:          db,
		log:         log,
		productRepo: productRepo,
	}
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) result.Result[*dto.CreateProductResponse] {
	product, err := entity.NewProduct(req.Code, req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return result.Err[*dto.CreateProductResponse](err)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Pre-check gives a specific message; the partial unique index still
	// backs it up against concurrent inserts.
	exists, err := u.productRepo.ExistsByCode(tx, product.Code)
	if err != nil {
		u.log.Warnf("Failed to check product code: %+v", err)
		return result.Err[*dto.CreateProductResponse](&StoreError{Err: err})
	}
	if exists {
		return result.Err[*dto.CreateProductResponse](duplicateCode(product.Code))
	}

	if err := u.productRepo.Create(tx, product); err != nil {
		if isDuplicateKeyError(err, "code") {
			return result.Err[*dto.CreateProductResponse](duplicateCode(product.Code))
		}
		u.log.Warnf("Failed to create product: %+v", err)
		return result.Err[*dto.CreateProductResponse](&StoreError{Err: err})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return result.Err[*dto.CreateProductResponse](&StoreError{Err: err})
	}

	return result.Ok(&dto.CreateProductResponse{ID: product.ID})
}

func (u *productUsecase) GetByID(ctx context.Context, id uuid.UUID) result.Result[*dto.ProductResponse] {
	product, err := u.productRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return result.Err[*dto.ProductResponse](&StoreError{Err: err})
	}
	if product == nil {
		return result.Err[*dto.ProductResponse](ErrProductNotFound)
	}

	return result.Ok(converter.ProductToResponse(product))
}

func (u *productUsecase) GetAll(ctx context.Context, page, pageSize int) result.Result[*dto.ProductListResponse] {
	p := pagination.Normalize(page, pageSize)

	products, total, err := u.productRepo.FindPage(u.db.WithContext(ctx), p.Size, p.Offset())
	if err != nil {
		u.log.Warnf("Failed to find products: %+v", err)
		return result.Err[*dto.ProductListResponse](&StoreError{Err: err})
	}

	return result.Ok(&dto.ProductListResponse{
		Items:      converter.ProductsToListItems(products),
		TotalItems: total,
		TotalPages: p.TotalPages(total),
		Page:       p.Number,
		PageSize:   p.Size,
	})
}

func (u *productUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateProductRequest) result.Result[result.Unit] {
	return u.mutate(ctx, id, func(product *entity.Product) error {
		return product.Update(req.Name, req.Description, req.Price, req.Stock)
	})
}

func (u *productUsecase) AdjustStock(ctx context.Context, id uuid.UUID, delta int) result.Result[result.Unit] {
	return u.mutate(ctx, id, func(product *entity.Product) error {
		return product.AdjustStock(delta)
	})
}

func (u *productUsecase) Delete(ctx context.Context, id uuid.UUID) result.Result[result.Unit] {
	return u.mutate(ctx, id, func(product *entity.Product) error {
		return product.Delete()
	})
}

// mutate runs one read-modify-write cycle inside a single transaction:
// lookup among live rows, apply the domain mutation, persist. Soft-deleted
// products are indistinguishable from absent ones.
func (u *productUsecase) mutate(ctx context.Context, id uuid.UUID, apply func(*entity.Product) error) result.Result[result.Unit] {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	product, err := u.productRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find product: %+v", err)
		return result.Err[result.Unit](&StoreError{Err: err})
	}
	if product == nil {
		return result.Err[result.Unit](ErrProductNotFound)
	}

	if err := apply(product); err != nil {
		return result.Err[result.Unit](err)
	}

	if err := u.productRepo.Update(tx, product); err != nil {
		u.log.Warnf("Failed to update product: %+v", err)
		return result.Err[result.Unit](&StoreError{Err: err})
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return result.Err[result.Unit](&StoreError{Err: err})
	}

	return result.Done()
}

func duplicateCode(code string) error {
	return &entity.InvariantViolation{Message: fmt.Sprintf("Product with code '%s' already exists", code)}
}

// isDuplicateKeyError checks for a unique constraint violation, either as a
// PostgreSQL unique_violation (23505) on the named constraint or as GORM's
// translated duplicate-key error.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
