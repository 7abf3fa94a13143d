package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-board-api.com/task-board-api/internal/configs"
	httpapi "task-board-api.com/task-board-api/internal/http"
	middleware "task-board-api.com/task-board-api/internal/http/middlewares"
	repository "task-board-api.com/task-board-api/internal/repositories"
	"task-board-api.com/task-board-api/internal/services"
	"task-board-api.com/task-board-api/internal/token"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := config.NewLogger()

		if err := godotenv.Load(); err != nil {
			logger.Info().Msg(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		userRepo := repository.NewUserRepository(database)
		taskRepo := repository.NewTaskRepository(database)
		groupRepo := repository.NewGroupRepository(database)
		refRepo := repository.NewReferenceRepository(database)

		tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)

		authService := services.NewAuthService(userRepo, refRepo, tokens, cfg.BcryptCost)
		taskService := services.NewTaskService(taskRepo, groupRepo, refRepo)
		groupService := services.NewGroupService(groupRepo, taskRepo)
		adminService := services.NewAdminService(userRepo, groupRepo, taskRepo)

		e := echo.New()
		e.HideBanner = true
		e.HTTPErrorHandler = httpapi.NewErrorHandler(logger)
		e.Use(middleware.RequestLogger(logger))

		handler := httpapi.NewHandler(authService, taskService, groupService, adminService)
		httpapi.Register(e, handler, middleware.Authenticate(tokens, userRepo))

		go func() {
			logger.Info().Str("addr", cfg.AppURL).Msg("HTTP server listening")
			if err := e.Start(cfg.AppURL); err != nil {
				logger.Info().Err(err).Msg("server stopped")
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)

		logger.Info().Msg("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
