package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/utils"
)

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.SendValidationError(c, "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.SendValidationError(c, utils.BindingErrorMessage(err))
		return false
	}
	return true
}
