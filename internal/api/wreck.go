package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/recipewreck/backend/internal/service"
	"github.com/recipewreck/backend/internal/types"
)

// WreckHandler handles recipe-card generation requests
type WreckHandler struct {
	wreckService service.IWreckService
	logger       *zap.Logger
}

// NewWreckHandler creates a new WreckHandler instance
func NewWreckHandler(wreckService service.IWreckService, logger *zap.Logger) *WreckHandler {
	return &WreckHandler{
		wreckService: wreckService,
		logger:       logger,
	}
}

// Generate handles POST /wrecks/generate
func (h *WreckHandler) Generate(c *gin.Context) {
	var req types.GenerateWreckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.wreckService.GenerateWreck(c.Request.Context(), req.Prompt)
	if err != nil {
		h.logger.Error("wreck generation failed",
			zap.String("prompt", req.Prompt),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
