package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Tanner253/BigsAckies-sub001/internal/domain/catalog"
	"github.com/Tanner253/BigsAckies-sub001/internal/domain/shared"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) PublicURL(storageKey string) string {
	args := m.Called(storageKey)
	return args.String(0)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func newProductService() (*ProductService, *MockProductRepository, *MockCategoryRepository, *MockObjectStorage) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	storage := new(MockObjectStorage)
	service := NewProductService(productRepo, categoryRepo, storage, zap.NewNop())
	return service, productRepo, categoryRepo, storage
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product with price in cents", func(t *testing.T) {
		service, productRepo, _, _ := newProductService()
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			Name:  "Red Ackie Monitor",
			Price: "249.99",
			Stock: 3,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(24999), resp.PriceCents)
		assert.Equal(t, "249.99", resp.PriceFormatted)
		assert.True(t, resp.InStock)
		productRepo.AssertExpectations(t)
	})

	t.Run("records sexed counts", func(t *testing.T) {
		service, productRepo, _, _ := newProductService()
		productRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(ctx, CreateProductRequest{
			Name:        "Leopard Gecko",
			Price:       "89.00",
			Stock:       5,
			MaleCount:   2,
			FemaleCount: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.MaleCount)
		assert.Equal(t, 2, resp.FemaleCount)
		assert.Equal(t, 0, resp.UnknownCount)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		service, _, categoryRepo, _ := newProductService()
		categoryID := uuid.New()
		categoryRepo.On("FindByID", ctx, categoryID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, CreateProductRequest{
			Name:       "Ball Python",
			Price:      "150.00",
			CategoryID: &categoryID,
		})

		assert.Error(t, err)
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CATEGORY", domainErr.Code)
	})

	t.Run("rejects malformed price", func(t *testing.T) {
		service, _, _, _ := newProductService()

		_, err := service.Create(ctx, CreateProductRequest{
			Name:  "Crested Gecko",
			Price: "not-a-price",
		})

		assert.Error(t, err)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates price and stock", func(t *testing.T) {
		service, productRepo, _, _ := newProductService()
		product, _ := catalog.NewProduct("Ackie Monitor", "", 20000, 2, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)

		resp, err := service.Update(ctx, product.ID, UpdateProductRequest{
			Name:  "Ackie Monitor",
			Price: "12.00",
			Stock: 10,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1200), resp.PriceCents)
		assert.Equal(t, 10, resp.Stock)
	})

	t.Run("missing product", func(t *testing.T) {
		service, productRepo, _, _ := newProductService()
		id := uuid.New()
		productRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateProductRequest{Name: "X", Price: "1.00"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductService_ImageUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("issues presigned URL scoped to the product", func(t *testing.T) {
		service, productRepo, _, storage := newProductService()
		product, _ := catalog.NewProduct("Blue Tegu", "", 45000, 1, nil)
		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		expires := time.Now().Add(15 * time.Minute)
		storage.On("GenerateUploadURL", ctx, mock.AnythingOfType("string"), "image/jpeg").
			Return("https://bucket.example.com/presigned", expires, nil)

		resp, err := service.RequestImageUpload(ctx, product.ID, ImageUploadRequest{ContentType: "image/jpeg"})

		assert.NoError(t, err)
		assert.Equal(t, "https://bucket.example.com/presigned", resp.UploadURL)
		assert.Contains(t, resp.StorageKey, "products/"+product.ID.String()+"/")
		assert.Equal(t, expires, resp.ExpiresAt)
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		service, _, _, _ := newProductService()

		_, err := service.RequestImageUpload(ctx, uuid.New(), ImageUploadRequest{ContentType: "application/pdf"})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CONTENT_TYPE", domainErr.Code)
	})

	t.Run("confirm attaches the public URL", func(t *testing.T) {
		service, productRepo, _, storage := newProductService()
		product, _ := catalog.NewProduct("Blue Tegu", "", 45000, 1, nil)
		key := "products/" + product.ID.String() + "/abc.jpg"

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Save", ctx, product).Return(nil)
		storage.On("ObjectExists", ctx, key).Return(true, nil)
		storage.On("PublicURL", key).Return("https://cdn.example.com/" + key)

		resp, err := service.ConfirmImageUpload(ctx, product.ID, ConfirmImageRequest{StorageKey: key})

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/"+key, resp.ImageURL)
	})

	t.Run("confirm rejects keys for other products", func(t *testing.T) {
		service, _, _, _ := newProductService()

		_, err := service.ConfirmImageUpload(ctx, uuid.New(), ConfirmImageRequest{
			StorageKey: "products/" + uuid.New().String() + "/abc.jpg",
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STORAGE_KEY", domainErr.Code)
	})

	t.Run("confirm fails when nothing was uploaded", func(t *testing.T) {
		service, productRepo, _, storage := newProductService()
		product, _ := catalog.NewProduct("Blue Tegu", "", 45000, 1, nil)
		key := "products/" + product.ID.String() + "/abc.jpg"

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		storage.On("ObjectExists", ctx, key).Return(false, nil)

		_, err := service.ConfirmImageUpload(ctx, product.ID, ConfirmImageRequest{StorageKey: key})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UPLOAD_NOT_FOUND", domainErr.Code)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes product and its image", func(t *testing.T) {
		service, productRepo, _, storage := newProductService()
		product, _ := catalog.NewProduct("Sulcata Tortoise", "", 30000, 1, nil)
		product.SetImage("https://cdn.example.com/img", "products/x/img.jpg")

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Delete", ctx, product.ID).Return(nil)
		storage.On("DeleteObject", ctx, "products/x/img.jpg").Return(nil)

		err := service.Delete(ctx, product.ID)

		assert.NoError(t, err)
		storage.AssertExpectations(t)
	})

	t.Run("storage failure does not fail the delete", func(t *testing.T) {
		service, productRepo, _, storage := newProductService()
		product, _ := catalog.NewProduct("Sulcata Tortoise", "", 30000, 1, nil)
		product.SetImage("https://cdn.example.com/img", "products/x/img.jpg")

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		productRepo.On("Delete", ctx, product.ID).Return(nil)
		storage.On("DeleteObject", ctx, "products/x/img.jpg").Return(assert.AnError)

		err := service.Delete(ctx, product.ID)

		assert.NoError(t, err)
	})
}
