package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"vbuddy/internal/application/support/usecases"
	"vbuddy/internal/infrastructure/chatlog"
	"vbuddy/internal/infrastructure/config"
	"vbuddy/internal/infrastructure/email"
	"vbuddy/internal/infrastructure/ledger"
	httpRouter "vbuddy/internal/interfaces/http"
	"vbuddy/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the VBuddy support backend with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"ledger_path", cfg.Ledger.Path)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	log := logger.NewLogger()

	ledgerStore := ledger.NewXLSXStore(cfg.Ledger.Path, log)
	dispatcher := email.NewSMTPDispatcher(email.SMTPConfig{
		Host:           cfg.Email.SMTPHost,
		Port:           cfg.Email.SMTPPort,
		Username:       cfg.Email.SMTPUser,
		Password:       cfg.Email.SMTPPassword,
		FromAddress:    cfg.Email.FromAddress,
		FromName:       cfg.Email.FromName,
		SupportAddress: cfg.Email.SupportAddress,
		LogoPath:       cfg.Email.LogoPath,
		SendTimeout:    cfg.Email.SendTimeout(),
	}, log)
	transcript := chatlog.NewFileLog(cfg.ChatLog.Path)

	submitTicketUC := usecases.NewSubmitTicketUseCase(ledgerStore, dispatcher, log)
	logChatUC := usecases.NewLogChatMessageUseCase(transcript, log)

	router := httpRouter.NewRouter(submitTicketUC, logChatUC, cfg, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
