package services

import (
	"context"
	"errors"

	"github.com/princeprakhar/product-reviews/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ReviewService{db: db}
}

type ReviewInput struct {
	Comment   string
	ProductID uint
	BuyerID   uint
}

// GetProductReviews lists the reviews of one product with their buyers. An
// unknown product simply has no reviews.
func (s *ReviewService) GetProductReviews(ctx context.Context, productID uint) ([]models.Review, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	reviews := make([]models.Review, 0)
	err := s.db.WithContext(ctx).
		Preload("Buyer").
		Where("product_id = ?", productID).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, queryError("fetch reviews", err)
	}
	return reviews, nil
}

// CreateReview relies on the store's foreign keys to reject a review whose
// product or buyer does not exist.
func (s *ReviewService) CreateReview(ctx context.Context, in ReviewInput) (*models.Review, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	review := models.Review{
		Comment:   in.Comment,
		ProductID: in.ProductID,
		BuyerID:   in.BuyerID,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrInvalidReference
		}
		return nil, queryError("create review", err)
	}

	if err := s.db.WithContext(ctx).Preload("Product").Preload("Buyer").First(&review, review.ID).Error; err != nil {
		return nil, queryError("load created review", err)
	}
	return &review, nil
}
