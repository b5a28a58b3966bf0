package models

import (
	"strconv"

	"github.com/princeprakhar/product-reviews/internal/serializer"
)

type Buyer struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex"`

	// Relations
	Reviews []Review `json:"reviews" gorm:"foreignKey:BuyerID"`
}

func (Buyer) TableName() string {
	return "buyer"
}

var buyerRules = []serializer.Path{
	serializer.Exclude(serializer.FieldReviews, serializer.FieldBuyer),
}

func (b Buyer) Identity() string {
	return "buyer:" + strconv.FormatUint(uint64(b.ID), 10)
}

func (b Buyer) Attributes() map[string]any {
	return map[string]any{
		"id":   b.ID,
		"name": b.Name,
	}
}

func (b Buyer) Relations() map[serializer.Field]any {
	return map[serializer.Field]any{
		serializer.FieldReviews: reviewNodes(b.Reviews),
	}
}

func (Buyer) Rules() []serializer.Path {
	return buyerRules
}

// BuyerProduct is the many-to-many join between buyers and products. It is
// migrated with the rest of the schema but nothing reads or writes it yet.
type BuyerProduct struct {
	BuyerID   uint `gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false"`

	Buyer   Buyer   `gorm:"foreignKey:BuyerID"`
	Product Product `gorm:"foreignKey:ProductID"`
}

func (BuyerProduct) TableName() string {
	return "buyer_product"
}
