package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/serializer"
	"github.com/princeprakhar/product-reviews/internal/services"
	"github.com/princeprakhar/product-reviews/internal/utils"
	"github.com/princeprakhar/product-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// productRequest is the body of POST and PUT. Pointers tell a missing field
// apart from a zero value.
type productRequest struct {
	Desc  *string  `json:"desc" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Qty   *int     `json:"qty" binding:"required"`
}

func (r productRequest) input() services.ProductInput {
	return services.ProductInput{
		Desc:  *r.Desc,
		Price: *r.Price,
		Qty:   *r.Qty,
	}
}

func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.GetProducts(c.Request.Context())
	if err != nil {
		sendServiceError(c, "Failed to retrieve products", err)
		return
	}

	utils.SendSuccess(c, serializer.SerializeAll(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "product")
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		sendServiceError(c, "Failed to retrieve product", err)
		return
	}

	utils.SendSuccess(c, serializer.Serialize(product))
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req.input())
	if err != nil {
		sendServiceError(c, "Failed to create product", err)
		return
	}

	logger.WithFields(logrus.Fields{"product_id": product.ID}).Info("Product created")
	utils.SendCreated(c, serializer.Serialize(product))
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "product")
	if !ok {
		return
	}

	var req productRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, req.input())
	if err != nil {
		sendServiceError(c, "Failed to update product", err)
		return
	}

	utils.SendSuccess(c, serializer.Serialize(product))
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "product")
	if !ok {
		return
	}

	product, err := h.productService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		sendServiceError(c, "Failed to delete product", err)
		return
	}

	logger.WithFields(logrus.Fields{"product_id": product.ID}).Info("Product deleted")
	utils.SendSuccess(c, serializer.Serialize(product))
}
