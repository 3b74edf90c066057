package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// Product represents a sellable item. Live animals additionally carry sexed
// inventory counts (male/female/unknown); the counts are informational and
// stock is the single source of truth for availability.
type Product struct {
	shared.BaseEntity
	Name         string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	PriceCents   int64      `gorm:"not null" json:"price_cents"`
	Stock        int        `gorm:"not null;default:0" json:"stock"`
	MaleCount    int        `gorm:"not null;default:0" json:"male_count"`
	FemaleCount  int        `gorm:"not null;default:0" json:"female_count"`
	UnknownCount int        `gorm:"not null;default:0" json:"unknown_count"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index" json:"category_id"`
	ImageURL     string     `gorm:"type:varchar(500)" json:"image_url"`
	ImageKey     string     `gorm:"type:varchar(255)" json:"-"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name, description string, priceCents int64, stock int, categoryID *uuid.UUID) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProduct(name, priceCents, stock); err != nil {
		return nil, err
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		Stock:       stock,
		CategoryID:  categoryID,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string, priceCents int64, stock int, categoryID *uuid.UUID) error {
	name = strings.TrimSpace(name)
	if err := validateProduct(name, priceCents, stock); err != nil {
		return err
	}
	p.Name = name
	p.Description = description
	p.PriceCents = priceCents
	p.Stock = stock
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	return nil
}

// SetSexedCounts records the sexed inventory breakdown
func (p *Product) SetSexedCounts(male, female, unknown int) error {
	if male < 0 || female < 0 || unknown < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Sexed counts cannot be negative")
	}
	p.MaleCount = male
	p.FemaleCount = female
	p.UnknownCount = unknown
	p.UpdatedAt = time.Now()
	return nil
}

// SetImage records the uploaded image location
func (p *Product) SetImage(url, key string) {
	p.ImageURL = url
	p.ImageKey = key
	p.UpdatedAt = time.Now()
}

// HasStock reports whether the requested quantity is available
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}

func validateProduct(name string, priceCents int64, stock int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 255 characters")
	}
	if priceCents < 0 {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	return nil
}
