package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// allowed image content types, keyed to the file extension used in storage keys
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// ProductService handles product catalog operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	storage      ObjectStorage
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
		logger:       logger,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	priceCents, err := shared.ParseDollars(req.Price)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
	}

	product, err := catalog.NewProduct(req.Name, req.Description, priceCents, req.Stock, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := product.SetSexedCounts(req.MaleCount, req.FemaleCount, req.UnknownCount); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ToProductResponse(&products[i]))
	}

	result := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	priceCents, err := shared.ParseDollars(req.Price)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
	}

	if err := product.Update(req.Name, req.Description, priceCents, req.Stock, req.CategoryID); err != nil {
		return nil, err
	}
	if err := product.SetSexedCounts(req.MaleCount, req.FemaleCount, req.UnknownCount); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product. The stored image, if any, is deleted best effort.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	if product.ImageKey != "" {
		if err := s.storage.DeleteObject(ctx, product.ImageKey); err != nil {
			s.logger.Warn("Failed to delete product image",
				zap.String("product_id", productID.String()),
				zap.String("storage_key", product.ImageKey),
				zap.Error(err))
		}
	}

	s.logger.Info("Product deleted", zap.String("product_id", productID.String()))
	return nil
}

// RequestImageUpload issues a presigned upload URL for a product image.
// The client uploads directly to storage and then confirms the upload.
func (s *ProductService) RequestImageUpload(ctx context.Context, productID uuid.UUID, req ImageUploadRequest) (*ImageUploadResponse, error) {
	contentType := strings.ToLower(strings.TrimSpace(req.ContentType))
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Image must be JPEG, PNG or WebP")
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	storageKey := fmt.Sprintf("products/%s/%s.%s", productID, uuid.New(), ext)
	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, contentType)
	if err != nil {
		s.logger.Error("Failed to generate upload URL",
			zap.String("product_id", productID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to generate upload URL")
	}

	return &ImageUploadResponse{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmImageUpload verifies the uploaded object and attaches it to the
// product. The previous image, if any, is deleted best effort.
func (s *ProductService) ConfirmImageUpload(ctx context.Context, productID uuid.UUID, req ConfirmImageRequest) (*ProductResponse, error) {
	expectedPrefix := fmt.Sprintf("products/%s/", productID)
	if !strings.HasPrefix(req.StorageKey, expectedPrefix) {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key does not belong to this product")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, req.StorageKey)
	if err != nil {
		s.logger.Error("Failed to check uploaded image",
			zap.String("storage_key", req.StorageKey),
			zap.Error(err))
		return nil, shared.NewDomainError("STORAGE_ERROR", "Failed to verify uploaded image")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "No uploaded image found for this key")
	}

	previousKey := product.ImageKey
	product.SetImage(s.storage.PublicURL(req.StorageKey), req.StorageKey)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	if previousKey != "" && previousKey != req.StorageKey {
		if err := s.storage.DeleteObject(ctx, previousKey); err != nil {
			s.logger.Warn("Failed to delete replaced product image",
				zap.String("storage_key", previousKey),
				zap.Error(err))
		}
	}

	response := ToProductResponse(product)
	return &response, nil
}
