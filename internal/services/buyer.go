package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/princeprakhar/product-reviews/internal/models"
	"gorm.io/gorm"
)

type BuyerService struct {
	db *gorm.DB
}

func NewBuyerService(db *gorm.DB) *BuyerService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &BuyerService{db: db}
}

func (s *BuyerService) withReviews(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Reviews").Preload("Reviews.Product")
}

func (s *BuyerService) GetBuyers(ctx context.Context) ([]models.Buyer, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	buyers := make([]models.Buyer, 0)
	if err := s.withReviews(ctx).Order("id").Find(&buyers).Error; err != nil {
		return nil, queryError("fetch buyers", err)
	}
	return buyers, nil
}

func (s *BuyerService) GetBuyerByID(ctx context.Context, id uint) (*models.Buyer, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	return s.find(ctx, id)
}

func (s *BuyerService) find(ctx context.Context, id uint) (*models.Buyer, error) {
	var buyer models.Buyer
	if err := s.withReviews(ctx).First(&buyer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBuyerNotFound
		}
		return nil, queryError("fetch buyer", err)
	}
	return &buyer, nil
}

func (s *BuyerService) CreateBuyer(ctx context.Context, name string) (*models.Buyer, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	buyer := &models.Buyer{Name: name}
	if err := s.db.WithContext(ctx).Create(buyer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return nil, queryError("create buyer", err)
	}

	buyer.Reviews = []models.Review{}
	return buyer, nil
}

func (s *BuyerService) UpdateBuyer(ctx context.Context, id uint, name string) (*models.Buyer, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	buyer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Buyer{ID: buyer.ID}).Update("name", name).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return nil, queryError("update buyer", err)
	}

	buyer.Name = name
	return buyer, nil
}

func (s *BuyerService) DeleteBuyer(ctx context.Context, id uint) (*models.Buyer, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	buyer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(buyer.Reviews) > 0 {
		return nil, fmt.Errorf("buyer %d %w", buyer.ID, ErrReferenced)
	}

	// The foreign key still refuses the delete if a review lands in between.
	if err := s.db.WithContext(ctx).Delete(&models.Buyer{}, buyer.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, fmt.Errorf("buyer %d %w", buyer.ID, ErrReferenced)
		}
		return nil, queryError("delete buyer", err)
	}

	return buyer, nil
}
