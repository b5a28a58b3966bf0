package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/princeprakhar/product-reviews/internal/models"
	"gorm.io/gorm"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ProductService{
		db: db,
	}
}

// ProductInput carries the writable columns of a product. PUT replaces all
// three, so there are no optional fields.
type ProductInput struct {
	Desc  string
	Price float64
	Qty   int
}

// withReviews preloads what a serialized product renders: its reviews and
// the buyer of each review.
func (s *ProductService) withReviews(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Reviews").Preload("Reviews.Buyer")
}

func (s *ProductService) GetProducts(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	products := make([]models.Product, 0)
	if err := s.withReviews(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, queryError("fetch products", err)
	}
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.find(ctx, id)
}

func (s *ProductService) find(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.withReviews(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, queryError("fetch product", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	product := &models.Product{
		Desc:  in.Desc,
		Price: in.Price,
		Qty:   in.Qty,
	}
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, queryError("create product", err)
	}

	product.Reviews = []models.Review{}
	return product, nil
}

// UpdateProduct overwrites desc, price and qty. Reviews are left alone.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"desc":  in.Desc,
		"price": in.Price,
		"qty":   in.Qty,
	}
	if err := s.db.WithContext(ctx).Model(&models.Product{ID: product.ID}).Updates(updates).Error; err != nil {
		return nil, queryError("update product", err)
	}

	product.Desc = in.Desc
	product.Price = in.Price
	product.Qty = in.Qty
	return product, nil
}

// DeleteProduct removes the product and returns it as it was just before
// removal. A product that still has reviews is not removed.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) (*models.Product, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(product.Reviews) > 0 {
		return nil, fmt.Errorf("product %d %w", product.ID, ErrReferenced)
	}

	// The foreign key still refuses the delete if a review lands in between.
	if err := s.db.WithContext(ctx).Delete(&models.Product{}, product.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("product %d %w", product.ID, ErrReferenced)
		}
		return nil, queryError("delete product", err)
	}

	return product, nil
}
