package v1

import (
	"errors"
	"net/http"

	"github.com/shared-city/backend/internal/service"
	"github.com/shared-city/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initChatRoutes(api *gin.RouterGroup) {
	api.POST("/chat", h.chat)
}

type chatRequest struct {
	ConversationID string `json:"conversation_id" binding:"max=64"`
	Message        string `json:"message" binding:"required,max=4000"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// @Summary Ask the assistant
// @Tags Chat
// @ModuleID chat
// @Accept  json
// @Produce  json
// @Param input body chatRequest true "message"
// @Success 200 {object} chatResponse
// @Failure 400 {object} ErrorStruct
// @Failure 502 {object} ErrorStruct
// @Failure 503 {object} ErrorStruct
// @Router /chat [post]
func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	reply, err := h.services.Assistant.Chat(c.Request.Context(), req.ConversationID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssistantDisabled):
			errorResponseWithStatus(c, http.StatusServiceUnavailable, AssistantDisabledCode)
		case errors.Is(err, service.ErrStoreUnavailable):
			logger.Error("chat memory unavailable", zap.Error(err))
			errorResponseWithStatus(c, http.StatusServiceUnavailable, StoreUnavailableCode)
		default:
			logger.Error("chat failed", zap.Error(err))
			errorResponseWithStatus(c, http.StatusBadGateway, AssistantFailedCode)
		}
		return
	}

	c.JSON(http.StatusOK, chatResponse{Reply: reply})
}
