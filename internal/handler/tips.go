package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contractcheck/backend/internal/service/tips"
)

type TipsHandler struct {
	service *tips.Service
}

func NewTipsHandler(service *tips.Service) *TipsHandler {
	return &TipsHandler{service: service}
}

func (h *TipsHandler) Random(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{"tip": h.service.Random(c.Request.Context())})
}
