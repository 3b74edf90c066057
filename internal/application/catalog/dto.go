package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// CreateProductRequest contains the input for creating a product.
// Price is a decimal dollar string ("25.50") and is converted to integer
// cents at the boundary.
type CreateProductRequest struct {
	Name         string     `json:"name" binding:"required,max=255"`
	Description  string     `json:"description"`
	Price        string     `json:"price" binding:"required"`
	Stock        int        `json:"stock" binding:"min=0"`
	MaleCount    int        `json:"male_count" binding:"min=0"`
	FemaleCount  int        `json:"female_count" binding:"min=0"`
	UnknownCount int        `json:"unknown_count" binding:"min=0"`
	CategoryID   *uuid.UUID `json:"category_id"`
}

// UpdateProductRequest contains the input for updating a product
type UpdateProductRequest struct {
	Name         string     `json:"name" binding:"required,max=255"`
	Description  string     `json:"description"`
	Price        string     `json:"price" binding:"required"`
	Stock        int        `json:"stock" binding:"min=0"`
	MaleCount    int        `json:"male_count" binding:"min=0"`
	FemaleCount  int        `json:"female_count" binding:"min=0"`
	UnknownCount int        `json:"unknown_count" binding:"min=0"`
	CategoryID   *uuid.UUID `json:"category_id"`
}

// ProductResponse is the API representation of a product
type ProductResponse struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	PriceCents     int64      `json:"price_cents"`
	PriceFormatted string     `json:"price_formatted"`
	Stock          int        `json:"stock"`
	InStock        bool       `json:"in_stock"`
	MaleCount      int        `json:"male_count"`
	FemaleCount    int        `json:"female_count"`
	UnknownCount   int        `json:"unknown_count"`
	CategoryID     *uuid.UUID `json:"category_id"`
	ImageURL       string     `json:"image_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ToProductResponse converts a product entity to its API representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		PriceCents:     p.PriceCents,
		PriceFormatted: shared.FormatCents(p.PriceCents),
		Stock:          p.Stock,
		InStock:        p.Stock > 0,
		MaleCount:      p.MaleCount,
		FemaleCount:    p.FemaleCount,
		UnknownCount:   p.UnknownCount,
		CategoryID:     p.CategoryID,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ProductListFilter contains filtering options for listing products
type ProductListFilter struct {
	Page       int
	PageSize   int
	OrderBy    string
	OrderDir   string
	Search     string
	CategoryID *uuid.UUID
}

// CreateCategoryRequest contains the input for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryRequest contains the input for updating a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// CategoryResponse is the API representation of a category
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a category entity to its API representation
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ImageUploadRequest contains the input for requesting a product image upload
type ImageUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// ImageUploadResponse carries the presigned upload URL for the client
type ImageUploadResponse struct {
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ConfirmImageRequest confirms that an image was uploaded to the given key
type ConfirmImageRequest struct {
	StorageKey string `json:"storage_key" binding:"required"`
}
