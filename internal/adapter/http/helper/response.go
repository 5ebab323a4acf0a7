package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/internal/core/model/response"
)

func SendMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, response.MessageResponse{Message: message})
}

func SendBadRequestError(c *gin.Context, message string) {
	SendMessage(c, http.StatusBadRequest, message)
}

func SendNotFoundError(c *gin.Context, message string) {
	SendMessage(c, http.StatusNotFound, message)
}

// SendInternalError surfaces the underlying store error message, matching the
// pass-through error reporting of the rest of the API.
func SendInternalError(c *gin.Context, err error) {
	SendMessage(c, http.StatusInternalServerError, err.Error())
}
