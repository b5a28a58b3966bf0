package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/serializer"
	"github.com/princeprakhar/product-reviews/internal/services"
	"github.com/princeprakhar/product-reviews/internal/utils"
	"github.com/princeprakhar/product-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

type BuyerHandler struct {
	buyerService *services.BuyerService
}

func NewBuyerHandler(buyerService *services.BuyerService) *BuyerHandler {
	return &BuyerHandler{buyerService: buyerService}
}

type buyerRequest struct {
	Name *string `json:"name" binding:"required"`
}

func (h *BuyerHandler) GetAllBuyers(c *gin.Context) {
	buyers, err := h.buyerService.GetBuyers(c.Request.Context())
	if err != nil {
		sendServiceError(c, "Failed to retrieve buyers", err)
		return
	}

	utils.SendSuccess(c, serializer.SerializeAll(buyers))
}

func (h *BuyerHandler) GetBuyer(c *gin.Context) {
	id, ok := parseID(c, "id", "buyer")
	if !ok {
		return
	}

	buyer, err := h.buyerService.GetBuyerByID(c.Request.Context(), id)
	if err != nil {
		sendServiceError(c, "Failed to retrieve buyer", err)
		return
	}

	utils.SendSuccess(c, serializer.Serialize(buyer))
}

func (h *BuyerHandler) CreateBuyer(c *gin.Context) {
	var req buyerRequest
	if !bindJSON(c, &req) {
		return
	}

	buyer, err := h.buyerService.CreateBuyer(c.Request.Context(), *req.Name)
	if err != nil {
		sendServiceError(c, "Failed to create buyer", err)
		return
	}

	logger.WithFields(logrus.Fields{"buyer_id": buyer.ID}).Info("Buyer created")
	utils.SendCreated(c, serializer.Serialize(buyer))
}

func (h *BuyerHandler) UpdateBuyer(c *gin.Context) {
	id, ok := parseID(c, "id", "buyer")
	if !ok {
		return
	}

	var req buyerRequest
	if !bindJSON(c, &req) {
		return
	}

	buyer, err := h.buyerService.UpdateBuyer(c.Request.Context(), id, *req.Name)
	if err != nil {
		sendServiceError(c, "Failed to update buyer", err)
		return
	}

	utils.SendSuccess(c, serializer.Serialize(buyer))
}

func (h *BuyerHandler) DeleteBuyer(c *gin.Context) {
	id, ok := parseID(c, "id", "buyer")
	if !ok {
		return
	}

	buyer, err := h.buyerService.DeleteBuyer(c.Request.Context(), id)
	if err != nil {
		sendServiceError(c, "Failed to delete buyer", err)
		return
	}

	logger.WithFields(logrus.Fields{"buyer_id": buyer.ID}).Info("Buyer deleted")
	utils.SendSuccess(c, serializer.Serialize(buyer))
}
