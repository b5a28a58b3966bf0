package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the error envelope. Successful responses carry the
// serialized record or list as the whole body.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func SendError(c *gin.Context, statusCode int, message string, err error) {
	response := APIResponse{
		Success: false,
		Message: message,
	}

	if err != nil {
		response.Error = err.Error()
	}

	c.AbortWithStatusJSON(statusCode, response)
}

func SendValidationError(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, message, nil)
}

func SendNotFound(c *gin.Context, message string, err error) {
	SendError(c, http.StatusNotFound, message, err)
}

func SendConflict(c *gin.Context, message string, err error) {
	SendError(c, http.StatusConflict, message, err)
}

// SendInternalError hides the cause from the client; callers log it.
func SendInternalError(c *gin.Context, message string) {
	SendError(c, http.StatusInternalServerError, message, nil)
}
