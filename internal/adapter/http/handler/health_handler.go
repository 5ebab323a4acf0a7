package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const livenessMessage = "TaskMaster API is running!"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, livenessMessage)
}
