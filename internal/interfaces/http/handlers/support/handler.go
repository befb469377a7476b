package support

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vbuddy/internal/application/support/usecases"
	"vbuddy/internal/shared/errors"
	"vbuddy/internal/shared/logger"
)

const (
	msgMissingDetails   = "Missing required support details."
	msgSubmitted        = "Support request successfully submitted."
	msgSubmittedNoEmail = "Support request successfully submitted. Confirmation email could not be delivered."
	msgSupportFailed    = "Failed to send support request email."
	msgNotRecorded      = "Unable to record support request."
	msgChatLogged       = "Chat message logged."
	msgChatNotLogged    = "Failed to log chat message."
)

type Handler struct {
	submitTicketUC usecases.SubmitTicketExecutor
	logChatUC      usecases.LogChatMessageExecutor
	logger         logger.Interface
}

func NewHandler(
	submitTicketUC usecases.SubmitTicketExecutor,
	logChatUC usecases.LogChatMessageExecutor,
) *Handler {
	return &Handler{
		submitTicketUC: submitTicketUC,
		logChatUC:      logChatUC,
		logger:         logger.NewLogger(),
	}
}

// SubmitTicket handles POST /api/send-support-email
func (h *Handler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid support request body", "error", err)
		c.JSON(http.StatusBadRequest, SubmitTicketResponse{
			Success: false,
			Message: msgMissingDetails,
		})
		return
	}

	result, err := h.submitTicketUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, SubmitTicketResponse{
				Success: false,
				Message: msgMissingDetails,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, SubmitTicketResponse{
			Success: false,
			Message: msgNotRecorded,
		})
		return
	}

	switch {
	case !result.SupportNotified:
		c.JSON(http.StatusInternalServerError, SubmitTicketResponse{
			Success:  false,
			Message:  msgSupportFailed,
			TicketID: result.TicketID,
		})
	case !result.RequesterNotified:
		c.JSON(http.StatusOK, SubmitTicketResponse{
			Success:  true,
			Message:  msgSubmittedNoEmail,
			TicketID: result.TicketID,
		})
	default:
		c.JSON(http.StatusOK, SubmitTicketResponse{
			Success:  true,
			Message:  msgSubmitted,
			TicketID: result.TicketID,
		})
	}
}

// LogChatMessage handles POST /api/log-chat
func (h *Handler) LogChatMessage(c *gin.Context) {
	var req LogChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid chat log body", "error", err)
		c.JSON(http.StatusBadRequest, LogChatMessageResponse{
			Success: false,
			Message: "Missing role or message.",
		})
		return
	}

	if err := h.logChatUC.Execute(c.Request.Context(), req.ToCommand()); err != nil {
		if errors.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, LogChatMessageResponse{
				Success: false,
				Message: "Missing role or message.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, LogChatMessageResponse{
			Success: false,
			Message: msgChatNotLogged,
		})
		return
	}

	c.JSON(http.StatusOK, LogChatMessageResponse{
		Success: true,
		Message: msgChatLogged,
	})
}
