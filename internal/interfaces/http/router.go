package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vbuddy/internal/application/support/usecases"
	"vbuddy/internal/infrastructure/config"
	supporthandlers "vbuddy/internal/interfaces/http/handlers/support"
	"vbuddy/internal/interfaces/http/middleware"
	"vbuddy/internal/interfaces/http/routes"
	"vbuddy/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	supportHandler *supporthandlers.Handler
	cfg            *config.Config
}

func NewRouter(
	submitTicketUC usecases.SubmitTicketExecutor,
	logChatUC usecases.LogChatMessageExecutor,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Logger(log),
	)

	return &Router{
		engine:         engine,
		supportHandler: supporthandlers.NewHandler(submitTicketUC, logChatUC),
		cfg:            cfg,
	}
}

func (r *Router) SetupRoutes() {
	supporthandlers.RegisterValidations()

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupSupportRoutes(r.engine, &routes.SupportRouteConfig{
		SupportHandler: r.supportHandler,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
