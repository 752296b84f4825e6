package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxCodeLength        = 20
	MaxNameLength        = 50
	MaxDescriptionLength = 1000
)

// Product is the catalog aggregate. New products must go through NewProduct,
// which is the only validated construction path; GORM rehydrates loaded rows
// directly into the struct fields.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	Code        string          `gorm:"type:varchar(20);not null"`
	Name        string          `gorm:"type:varchar(50);not null"`
	Description string          `gorm:"type:varchar(1000)"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   *time.Time      `gorm:"autoUpdateTime:false"`
	IsDeleted   bool            `gorm:"not null;default:false;index"`
	DeletedAt   *time.Time
}

func (Product) TableName() string {
	return "products"
}

// NewProduct validates all fields in a fixed order and returns a new product
// with a fresh identifier and CreatedAt stamped. UpdatedAt stays nil until
// the first mutation.
func NewProduct(code, name, description string, price decimal.Decimal, stock int) (*Product, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateStock(stock); err != nil {
		return nil, err
	}

	return &Product{
		ID:          uuid.New(),
		Code:        code,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		CreatedAt:   time.Now(),
	}, nil
}

// Update replaces the mutable attributes. Code is immutable after creation.
func (p *Product) Update(name, description string, price decimal.Decimal, stock int) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}
	if err := validateStock(stock); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.Price = price
	p.Stock = stock
	p.markUpdated()
	return nil
}

// AdjustStock applies a delta to the stock quantity, rejecting any delta
// that would leave it negative.
func (p *Product) AdjustStock(delta int) error {
	if p.Stock+delta < 0 {
		return &InvariantViolation{Message: "Insufficient stock"}
	}
	p.Stock += delta
	p.markUpdated()
	return nil
}

// Delete marks the product as soft-deleted. The transition is terminal;
// a second call fails.
func (p *Product) Delete() error {
	if p.IsDeleted {
		return &InvariantViolation{Message: "Product already deleted"}
	}
	now := time.Now()
	p.IsDeleted = true
	p.DeletedAt = &now
	p.UpdatedAt = &now
	return nil
}

func (p *Product) markUpdated() {
	now := time.Now()
	p.UpdatedAt = &now
}

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return &ValidationError{Field: "code", Message: "Code cannot be empty"}
	}
	if len(code) > MaxCodeLength {
		return &ValidationError{Field: "code", Message: fmt.Sprintf("Code cannot exceed %d characters", MaxCodeLength)}
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "Name cannot be empty"}
	}
	if len(name) > MaxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("Name cannot exceed %d characters", MaxNameLength)}
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return &ValidationError{Field: "description", Message: fmt.Sprintf("Description cannot exceed %d characters", MaxDescriptionLength)}
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return &ValidationError{Field: "price", Message: "Price cannot be negative"}
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return &ValidationError{Field: "stock", Message: "Stock cannot be negative"}
	}
	return nil
}
