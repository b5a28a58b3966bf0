package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/product-reviews/internal/api/middleware"
	"github.com/princeprakhar/product-reviews/internal/services"
	"github.com/princeprakhar/product-reviews/internal/utils"
	"github.com/princeprakhar/product-reviews/pkg/logger"
	"github.com/sirupsen/logrus"
)

// sendServiceError maps a service error onto a status code. Anything not
// classified by the services is a store failure.
func sendServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrBuyerNotFound):
		utils.SendNotFound(c, message, err)
	case errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrReferenced),
		errors.Is(err, services.ErrInvalidReference):
		utils.SendConflict(c, message, err)
	default:
		logger.WithFields(logrus.Fields{
			"path":       c.Request.URL.Path,
			"request_id": c.GetString(middleware.RequestIDKey),
		}).Errorf("%s: %v", message, err)
		utils.SendInternalError(c, message)
	}
}
