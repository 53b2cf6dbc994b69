package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nandafir/pkwt-BE/internal/captcha"
	"github.com/nandafir/pkwt-BE/internal/checker"
	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
	"github.com/nandafir/pkwt-BE/internal/token"
	"github.com/nandafir/pkwt-BE/internal/util"
)

type Server struct {
	router         *gin.Engine
	dbStore        db.Store
	tokenMaker     token.Maker
	config         util.Config
	captchaService *captcha.Service
	checkerDriver  *checker.Driver
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store db.Store, config util.Config, captchaService *captcha.Service, checkerDriver *checker.Driver) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}

	server := &Server{
		dbStore:        store,
		tokenMaker:     tokenMaker,
		config:         config,
		captchaService: captchaService,
		checkerDriver:  checkerDriver,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.GET("/auth/captcha", server.generateCaptcha)
	v1.POST("/auth/register", server.registerUser)
	v1.POST("/auth/login", server.loginUser)
	v1.POST("/tokens/verify", server.verifyAccessToken)

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware(server.tokenMaker))
	{
		contractGroup := authenticated.Group("/contracts")
		{
			contractGroup.POST("", server.createContract)
			contractGroup.GET("", server.listContracts)
			contractGroup.GET(":id", server.getContract)
			contractGroup.PUT(":id", server.updateContract)
			contractGroup.DELETE(":id", server.deleteContract)
			contractGroup.POST("import", server.importContracts)
		}

		notificationGroup := authenticated.Group("/notifications")
		{
			notificationGroup.GET("", server.listUnreadNotifications)
			notificationGroup.GET("all", server.listAllNotifications)
			notificationGroup.GET("count", server.countUnreadNotifications)
			notificationGroup.PUT("mark-all-read", server.markAllNotificationsRead)
			notificationGroup.PUT(":id/read", server.markNotificationRead)
			notificationGroup.DELETE(":id", server.deleteNotification)
		}

		authenticated.POST("/checker/run", server.runChecker)
	}

	server.router = router
}

// Start runs the HTTP server until ctx is canceled, then shuts it down
// gracefully, draining in-flight requests for a bounded period.
func (server *Server) Start(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:    address,
		Handler: server.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().Str("address", address).Msg("HTTP server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info().Msg("shutting down HTTP server")
	return httpServer.Shutdown(shutdownCtx)
}
