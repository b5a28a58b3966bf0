package models

import (
	"strconv"

	"github.com/princeprakhar/product-reviews/internal/serializer"
)

type Review struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Comment   string `json:"comment" gorm:"size:200"`
	ProductID uint   `json:"product_id" gorm:"not null;index"`
	BuyerID   uint   `json:"buyer_id" gorm:"not null;index"`

	// Relations
	Product *Product `json:"product,omitempty"`
	Buyer   *Buyer   `json:"buyer,omitempty"`
}

func (Review) TableName() string {
	return "review"
}

var reviewRules = []serializer.Path{
	serializer.Exclude(serializer.FieldProduct, serializer.FieldReviews),
	serializer.Exclude(serializer.FieldBuyer, serializer.FieldReviews),
}

func (r Review) Identity() string {
	return "review:" + strconv.FormatUint(uint64(r.ID), 10)
}

func (r Review) Attributes() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"comment":    r.Comment,
		"product_id": r.ProductID,
		"buyer_id":   r.BuyerID,
	}
}

// Relations reports an unloaded product or buyer as nil rather than as a
// typed nil pointer.
func (r Review) Relations() map[serializer.Field]any {
	rel := map[serializer.Field]any{
		serializer.FieldProduct: nil,
		serializer.FieldBuyer:   nil,
	}
	if r.Product != nil {
		rel[serializer.FieldProduct] = *r.Product
	}
	if r.Buyer != nil {
		rel[serializer.FieldBuyer] = *r.Buyer
	}
	return rel
}

func (Review) Rules() []serializer.Path {
	return reviewRules
}

func reviewNodes(reviews []Review) []serializer.Node {
	nodes := make([]serializer.Node, 0, len(reviews))
	for _, r := range reviews {
		nodes = append(nodes, r)
	}
	return nodes
}
