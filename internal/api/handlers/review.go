package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/serializer"
	"github.com/princeprakhar/product-reviews/internal/services"
	"github.com/princeprakhar/product-reviews/internal/utils"
	"github.com/princeprakhar/product-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Reviews listed by product drop the product entirely; the caller already
// knows which product it asked for.
var productReviewRules = []serializer.Path{
	serializer.Exclude(serializer.FieldProduct),
}

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type reviewRequest struct {
	Comment   *string `json:"comment" binding:"required"`
	ProductID *uint   `json:"prod_id" binding:"required"`
	BuyerID   *uint   `json:"buyer_id" binding:"required"`
}

func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID, ok := parseID(c, "prod_id", "product")
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetProductReviews(c.Request.Context(), productID)
	if err != nil {
		sendServiceError(c, "Failed to fetch reviews", err)
		return
	}

	utils.SendSuccess(c, serializer.SerializeAll(reviews, productReviewRules...))
}

// RequireProductID answers GET /review: reviews are only listed per product.
func (h *ReviewHandler) RequireProductID(c *gin.Context) {
	utils.SendValidationError(c, "A product ID is required to list reviews")
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req reviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), services.ReviewInput{
		Comment:   *req.Comment,
		ProductID: *req.ProductID,
		BuyerID:   *req.BuyerID,
	})
	if err != nil {
		sendServiceError(c, "Failed to create review", err)
		return
	}

	logger.WithFields(logrus.Fields{
		"review_id":  review.ID,
		"product_id": review.ProductID,
		"buyer_id":   review.BuyerID,
	}).Info("Review created")
	utils.SendCreated(c, serializer.Serialize(review))
}
