// Package server hosts the HTTP API: the gin engine, its middleware,
// and the listener lifecycle.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/zulandar/konoha/internal/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StartOpts holds configuration for the API server.
type StartOpts struct {
	DB      *gorm.DB
	Config  *config.Config
	Logger  *zap.Logger
	Version string
	Out     io.Writer
}

// Start launches the HTTP server. It blocks until ctx is cancelled,
// then shuts down gracefully.
func Start(ctx context.Context, opts StartOpts) error {
	if opts.DB == nil {
		return fmt.Errorf("server: db is required")
	}
	if opts.Config == nil {
		return fmt.Errorf("server: config is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(opts.DB, opts.Config, opts.Logger, opts.Version)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   opts.Config.CORS.Origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    opts.Config.Addr(),
		Handler: corsHandler.Handler(router),
	}

	// Graceful shutdown on context cancellation.
	go func() {
		<-ctx.Done()
		srv.Shutdown(context.Background())
	}()

	if opts.Out != nil {
		fmt.Fprintf(opts.Out, "%s listening at http://%s\n", opts.Config.App.Name, opts.Config.Addr())
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// newRouter assembles the gin engine with middleware and routes. Split
// from Start so tests can drive it without binding a port.
func newRouter(gormDB *gorm.DB, cfg *config.Config, log *zap.Logger, version string) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), withLogger(log), requestLogger(log), recovery(log))
	registerRoutes(router, gormDB, cfg, version)
	return router
}
