package routes

import (
	"github.com/gin-gonic/gin"

	supporthandlers "vbuddy/internal/interfaces/http/handlers/support"
)

type SupportRouteConfig struct {
	SupportHandler *supporthandlers.Handler
}

func SetupSupportRoutes(engine *gin.Engine, config *SupportRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/send-support-email", config.SupportHandler.SubmitTicket)
		api.POST("/log-chat", config.SupportHandler.LogChatMessage)
	}
}
