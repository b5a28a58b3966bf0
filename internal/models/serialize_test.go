package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/princeprakhar/product-reviews/internal/serializer"
)

func fixture() (Product, Buyer) {
	product := Product{ID: 1, Desc: "Widget", Price: 9.99, Qty: 10}
	buyer := Buyer{ID: 4, Name: "Alice"}

	review := Review{ID: 2, Comment: "Great", ProductID: product.ID, BuyerID: buyer.ID}
	withProduct := product
	withBuyer := buyer
	review.Product = &withProduct
	review.Buyer = &withBuyer

	product.Reviews = []Review{review}
	buyer.Reviews = []Review{review}
	withProduct.Reviews = product.Reviews
	withBuyer.Reviews = buyer.Reviews
	return product, buyer
}

func encode(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}

func TestProductOmitsReviewBackReference(t *testing.T) {
	product, _ := fixture()

	assert.JSONEq(t, `{
		"id": 1, "desc": "Widget", "price": 9.99, "qty": 10,
		"reviews": [
			{"id": 2, "comment": "Great", "product_id": 1, "buyer_id": 4,
			 "buyer": {"id": 4, "name": "Alice"}}
		]
	}`, encode(t, serializer.Serialize(product)))
}

func TestBuyerOmitsReviewBackReference(t *testing.T) {
	_, buyer := fixture()

	assert.JSONEq(t, `{
		"id": 4, "name": "Alice",
		"reviews": [
			{"id": 2, "comment": "Great", "product_id": 1, "buyer_id": 4,
			 "product": {"id": 1, "desc": "Widget", "price": 9.99, "qty": 10}}
		]
	}`, encode(t, serializer.Serialize(buyer)))
}

func TestReviewFlattensProductAndBuyer(t *testing.T) {
	product, _ := fixture()
	review := product.Reviews[0]

	assert.JSONEq(t, `{
		"id": 2, "comment": "Great", "product_id": 1, "buyer_id": 4,
		"product": {"id": 1, "desc": "Widget", "price": 9.99, "qty": 10},
		"buyer": {"id": 4, "name": "Alice"}
	}`, encode(t, serializer.Serialize(review)))
}

func TestReviewWithoutProduct(t *testing.T) {
	product, _ := fixture()
	review := product.Reviews[0]

	assert.JSONEq(t, `{
		"id": 2, "comment": "Great", "product_id": 1, "buyer_id": 4,
		"buyer": {"id": 4, "name": "Alice"}
	}`, encode(t, serializer.Serialize(review, serializer.Exclude(serializer.FieldProduct))))
}

func TestReviewUnloadedRelationsAreNull(t *testing.T) {
	review := Review{ID: 3, Comment: "ok", ProductID: 1, BuyerID: 1}

	out := serializer.Serialize(review)
	assert.Nil(t, out["product"])
	assert.Nil(t, out["buyer"])
}

func TestNewProductHasEmptyReviews(t *testing.T) {
	product := Product{ID: 1, Desc: "Widget", Price: 9.99, Qty: 10}

	assert.JSONEq(t, `{"id":1,"desc":"Widget","price":9.99,"qty":10,"reviews":[]}`,
		encode(t, serializer.Serialize(product)))
}
