package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/database"
	"github.com/princeprakhar/product-reviews/internal/utils"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		utils.SendError(c, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Server is running",
		"timestamp": time.Now().UTC(),
	})
}
