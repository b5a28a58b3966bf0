package models

import (
	"strconv"

	"github.com/princeprakhar/product-reviews/internal/serializer"
)

type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Desc  string  `json:"desc" gorm:"size:50"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`

	// Relations
	Reviews []Review `json:"reviews" gorm:"foreignKey:ProductID"`
}

func (Product) TableName() string {
	return "product"
}

var productRules = []serializer.Path{
	serializer.Exclude(serializer.FieldReviews, serializer.FieldProduct),
}

func (p Product) Identity() string {
	return "product:" + strconv.FormatUint(uint64(p.ID), 10)
}

func (p Product) Attributes() map[string]any {
	return map[string]any{
		"id":    p.ID,
		"desc":  p.Desc,
		"price": p.Price,
		"qty":   p.Qty,
	}
}

func (p Product) Relations() map[serializer.Field]any {
	return map[serializer.Field]any{
		serializer.FieldReviews: reviewNodes(p.Reviews),
	}
}

func (Product) Rules() []serializer.Path {
	return productRules
}
