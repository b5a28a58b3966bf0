package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeprakhar/product-reviews/internal/models"
)

func TestCreateBuyerEnforcesUniqueName(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuyerService(db)

	first, err := svc.CreateBuyer(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", first.Name)

	_, err = svc.CreateBuyer(ctx, "Alice")
	assert.ErrorIs(t, err, ErrDuplicateName)

	var count int64
	require.NoError(t, db.Model(&models.Buyer{}).Where("name = ?", "Alice").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateBuyer(t *testing.T) {
	svc := NewBuyerService(newTestDB(t))

	alice, err := svc.CreateBuyer(ctx, "Alice")
	require.NoError(t, err)
	_, err = svc.CreateBuyer(ctx, "Bob")
	require.NoError(t, err)

	renamed, err := svc.UpdateBuyer(ctx, alice.ID, "Alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", renamed.Name)

	_, err = svc.UpdateBuyer(ctx, alice.ID, "Bob")
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = svc.UpdateBuyer(ctx, 99, "Carol")
	assert.ErrorIs(t, err, ErrBuyerNotFound)

	got, err := svc.GetBuyerByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
}

func TestGetBuyersPreloadsReviewProducts(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuyerService(db)

	buyer, err := svc.CreateBuyer(ctx, "Alice")
	require.NoError(t, err)
	product := models.Product{Desc: "Widget", Price: 1, Qty: 1}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.Review{Comment: "Great", ProductID: product.ID, BuyerID: buyer.ID}).Error)

	buyers, err := svc.GetBuyers(ctx)
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	require.Len(t, buyers[0].Reviews, 1)
	require.NotNil(t, buyers[0].Reviews[0].Product)
	assert.Equal(t, "Widget", buyers[0].Reviews[0].Product.Desc)
}

func TestDeleteBuyer(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuyerService(db)

	lonely, err := svc.CreateBuyer(ctx, "Lonely")
	require.NoError(t, err)
	deleted, err := svc.DeleteBuyer(ctx, lonely.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lonely", deleted.Name)
	_, err = svc.GetBuyerByID(ctx, lonely.ID)
	assert.ErrorIs(t, err, ErrBuyerNotFound)

	reviewer, err := svc.CreateBuyer(ctx, "Reviewer")
	require.NoError(t, err)
	product := models.Product{Desc: "Widget"}
	require.NoError(t, db.Create(&product).Error)
	require.NoError(t, db.Create(&models.Review{Comment: "meh", ProductID: product.ID, BuyerID: reviewer.ID}).Error)

	_, err = svc.DeleteBuyer(ctx, reviewer.ID)
	assert.ErrorIs(t, err, ErrReferenced)
}
