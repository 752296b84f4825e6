package repository

import (
	"fmt"
	"testing"

	"go-product-catalog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database mirroring the production
// schema, including the partial unique index on live codes.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.Product{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := db.Exec("CREATE UNIQUE INDEX idx_products_code_live ON products (code) WHERE is_deleted = FALSE").Error; err != nil {
		t.Fatalf("failed to create unique index: %v", err)
	}

	return db
}

func newTestProduct(t *testing.T, code, name string) *entity.Product {
	t.Helper()

	product, err := entity.NewProduct(code, name, "", decimal.NewFromFloat(9.99), 10)
	require.NoError(t, err)
	return product
}

func TestProductRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	product := newTestProduct(t, "SKU-001", "Keyboard")
	require.NoError(t, repo.Create(db, product))

	found, err := repo.FindByID(db, product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, "SKU-001", found.Code)
	assert.Equal(t, "Keyboard", found.Name)
	assert.True(t, found.Price.Equal(product.Price))
	assert.Nil(t, found.UpdatedAt)
}

func TestProductRepository_FindByID_Absent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	found, err := repo.FindByID(db, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProductRepository_FindByID_ExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	product := newTestProduct(t, "SKU-001", "Keyboard")
	require.NoError(t, repo.Create(db, product))
	require.NoError(t, product.Delete())
	require.NoError(t, repo.Update(db, product))

	found, err := repo.FindByID(db, product.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProductRepository_FindPage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	// Insert out of code order to prove the listing sorts.
	for _, code := range []string{"SKU-003", "SKU-001", "SKU-002"} {
		require.NoError(t, repo.Create(db, newTestProduct(t, code, "Product "+code)))
	}

	products, total, err := repo.FindPage(db, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, products, 3)
	assert.Equal(t, "SKU-001", products[0].Code)
	assert.Equal(t, "SKU-002", products[1].Code)
	assert.Equal(t, "SKU-003", products[2].Code)
}

func TestProductRepository_FindPage_ExcludesDeleted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	keep := newTestProduct(t, "SKU-001", "Keyboard")
	drop := newTestProduct(t, "SKU-002", "Mouse")
	require.NoError(t, repo.Create(db, keep))
	require.NoError(t, repo.Create(db, drop))

	require.NoError(t, drop.Delete())
	require.NoError(t, repo.Update(db, drop))

	products, total, err := repo.FindPage(db, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "SKU-001", products[0].Code)
}

func TestProductRepository_FindPage_Offset(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	for i := 1; i <= 7; i++ {
		code := fmt.Sprintf("SKU-%03d", i)
		require.NoError(t, repo.Create(db, newTestProduct(t, code, "Product "+code)))
	}

	products, total, err := repo.FindPage(db, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, products, 3)
	assert.Equal(t, "SKU-004", products[0].Code)
	assert.Equal(t, "SKU-006", products[2].Code)

	// Past the end: empty slice, count unchanged.
	products, total, err = repo.FindPage(db, 3, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Empty(t, products)
}

func TestProductRepository_ExistsByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	product := newTestProduct(t, "SKU-001", "Keyboard")
	require.NoError(t, repo.Create(db, product))

	exists, err := repo.ExistsByCode(db, "SKU-001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(db, "SKU-999")
	require.NoError(t, err)
	assert.False(t, exists)

	// A deleted product frees its code.
	require.NoError(t, product.Delete())
	require.NoError(t, repo.Update(db, product))

	exists, err = repo.ExistsByCode(db, "SKU-001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProductRepository_UniqueCodeConstraint(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	require.NoError(t, repo.Create(db, newTestProduct(t, "SKU-001", "Keyboard")))

	err := repo.Create(db, newTestProduct(t, "SKU-001", "Mouse"))
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestProductRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository()

	product := newTestProduct(t, "SKU-001", "Keyboard")
	require.NoError(t, repo.Create(db, product))

	require.NoError(t, product.Update("Mouse", "Wireless", decimal.NewFromInt(15), 3))
	require.NoError(t, repo.Update(db, product))

	found, err := repo.FindByID(db, product.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Mouse", found.Name)
	assert.Equal(t, 3, found.Stock)
	assert.NotNil(t, found.UpdatedAt)
}
